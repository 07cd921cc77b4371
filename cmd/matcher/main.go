package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dcor01/student-mentor-matching/internal/config"
	"github.com/dcor01/student-mentor-matching/internal/match"
	"github.com/dcor01/student-mentor-matching/internal/report"
	"github.com/dcor01/student-mentor-matching/internal/roster"
	"github.com/dcor01/student-mentor-matching/internal/store"
)

func main() {
	var (
		input    = flag.String("input", "mentors.xlsx", "input workbook with Students and Mentors sheets")
		output   = flag.String("output", "mentor_matches_final.xlsx", "output workbook for the matches")
		cfgFlag  = flag.String("config", "", "config file path (default <data dir>/config.yml, created on first run)")
		capacity = flag.Int("capacity", 0, "override mentor capacity from config")
		dbPath   = flag.String("sqlite", "", "also write the matches to this sqlite database")
	)
	flag.Parse()

	// Data dir: use env if provided, else local folder.
	dataDir := os.Getenv("MATCHER_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath := *cfgFlag
	if cfgPath == "" {
		var err error
		cfgPath, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}

	// Capacity resolution: flag > env > config file.
	if v := os.Getenv("MENTOR_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("MENTOR_CAPACITY must be an integer, got %q", v)
		}
		cfg.Matching.MentorCapacity = n
	}
	if *capacity > 0 {
		cfg.Matching.MentorCapacity = *capacity
	}

	res := config.Validate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("[config] invalid (%s):\n- %s", cfgPath, strings.Join(res.Errors, "\n- "))
	}

	rosters, err := roster.Load(*input, cfg)
	if err != nil {
		log.Fatalf("[roster] %v", err)
	}
	for _, f := range rosters.Failures {
		log.Printf("[roster] skipped %s", f)
	}
	log.Printf("[roster] loaded %d students, %d mentors (%d rows skipped)",
		len(rosters.Students), len(rosters.Mentors), len(rosters.Failures))

	out := match.Run(rosters.Students, rosters.Mentors)
	log.Printf("[match] %d matched, %d unmatched (capacity %d per mentor)",
		len(out.Matches), len(out.Unmatched), cfg.Matching.MentorCapacity)

	if err := report.WriteWorkbook(*output, cfg.Sheets.Matches, out.Matches); err != nil {
		log.Fatalf("[report] %v", err)
	}
	log.Printf("[report] wrote %d matches to %s", len(out.Matches), *output)

	if *dbPath != "" {
		if err := saveRun(*dbPath, cfg.Matching.MentorCapacity, out); err != nil {
			log.Fatalf("[store] %v", err)
		}
		log.Printf("[store] wrote %d matches to %s", len(out.Matches), *dbPath)
	}

	report.PrintUnmatched(os.Stdout, out.Unmatched)
}

func saveRun(path string, capacity int, out match.Outcome) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return db.SaveRun(ctx, capacity, out.Matches)
}
