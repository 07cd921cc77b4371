package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Matching struct {
		// MentorCapacity is applied uniformly to every mentor at load time.
		MentorCapacity int `yaml:"mentor_capacity" validate:"required,min=1"`
	} `yaml:"matching"`

	Campus struct {
		// Keyword lists mapping faculty-name fragments to a campus.
		Campus1Keywords []string `yaml:"campus1_keywords" validate:"min=1,dive,required"`
		Campus2Keywords []string `yaml:"campus2_keywords" validate:"min=1,dive,required"`
	} `yaml:"campus"`

	Sheets struct {
		Students string `yaml:"students" validate:"required"`
		Mentors  string `yaml:"mentors" validate:"required"`
		Matches  string `yaml:"matches" validate:"required"`
	} `yaml:"sheets"`

	Columns struct {
		// Title is the mentor sheet's title column ("Mr./Ms."), matched
		// case-insensitively like every other header.
		Title string `yaml:"title" validate:"required"`
	} `yaml:"columns"`
}

func Default() Config {
	var cfg Config
	cfg.Matching.MentorCapacity = 11
	cfg.Campus.Campus1Keywords = []string{"Business", "Medicine"}
	cfg.Campus.Campus2Keywords = []string{"Law"}
	cfg.Sheets.Students = "Students"
	cfg.Sheets.Mentors = "Mentors"
	cfg.Sheets.Matches = "Final Matches"
	cfg.Columns.Title = "mr./ms."
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
