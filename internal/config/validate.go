package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Validate checks the struct tags first, then the rules tags can't express.
func Validate(cfg Config) Validation {
	var res Validation

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				res.addErr("%s fails %q", fe.Namespace(), fe.Tag())
			}
		} else {
			res.addErr("config validation: %v", err)
		}
	}

	if cfg.Matching.MentorCapacity > 50 {
		res.addWarn("matching.mentor_capacity is very high (%d); one mentor would carry that many students.", cfg.Matching.MentorCapacity)
	}

	if strings.EqualFold(cfg.Sheets.Students, cfg.Sheets.Mentors) {
		res.addErr("sheets.students and sheets.mentors must name different sheets")
	}

	// A keyword in both lists makes the campus mapping order-dependent.
	c2 := map[string]bool{}
	for _, k := range cfg.Campus.Campus2Keywords {
		c2[strings.ToLower(strings.TrimSpace(k))] = true
	}
	for _, k := range cfg.Campus.Campus1Keywords {
		if c2[strings.ToLower(strings.TrimSpace(k))] {
			res.addErr("campus keyword appears in both campus lists: %q", k)
		}
	}

	return res
}
