package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rhyrak/section-planner/internal/config"
	"github.com/rhyrak/section-planner/internal/csvio"
	"github.com/rhyrak/section-planner/internal/logger"
	"github.com/rhyrak/section-planner/internal/scheduler"
	"github.com/rhyrak/section-planner/internal/xlsx"
	"github.com/rhyrak/section-planner/pkg/model"
)

// Exit codes
const (
	exitOK = iota
	exitError
	exitNothingRequested
	exitUnknownCourse
	exitNoFeasibleSchedule
)

var (
	interactive = flag.Bool("i", false, "ask for the request on stdin instead of reading COURSES etc.")
	quiet       = flag.Bool("q", false, "do not print the ranking")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	req := cfg.Request
	if *interactive {
		req, err = prompt(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("failed to read request: %v", err)
		}
	}

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}
	os.Exit(run(cfg.Scheduler, req, logr, out, os.Stderr))
}

// run prints the ranking to out and outcome messages to msg.
func run(cfg *scheduler.Configuration, req scheduler.Request, logr *zap.Logger, out io.Writer, msg io.Writer) int {
	start := time.Now()

	catalog, err := scheduler.LoadCatalog(csvio.NewLoader(cfg.CatalogFile, cfg.Delimiter), cfg.BucketWidth)
	if err != nil {
		fmt.Fprintf(msg, "Could not load the class list: %v\n", err)
		return exitError
	}
	logr.Debug("catalog loaded", zap.String("file", cfg.CatalogFile), zap.Int("sections", catalog.Len()))

	planner := scheduler.NewPlanner(cfg, logr)
	result, err := planner.Plan(catalog, req)

	var unknown *model.UnknownCourseError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintf(msg, "Course %q is not offered. Check the spelling against the class list.\n", unknown.Course)
		return exitUnknownCourse
	case errors.Is(err, scheduler.ErrNoFeasibleSchedule):
		fmt.Fprintln(msg, "No schedule satisfies the constraints. Try widening the hours or shortening the blacklist.")
		return exitNoFeasibleSchedule
	case err != nil:
		fmt.Fprintf(msg, "Could not build schedules: %v\n", err)
		return exitError
	}
	if len(req.Courses) == 0 {
		fmt.Fprintln(msg, "No courses requested, nothing to do.")
		return exitNothingRequested
	}

	sinks := []scheduler.Sink{
		&csvio.Exporter{RankingPath: cfg.ExportFile, CombinationsPath: cfg.CombinationsFile},
	}
	if cfg.WorkbookFile != "" {
		sinks = append(sinks, xlsx.NewExporter(cfg.WorkbookFile))
	}
	if err := planner.Export(catalog, result, sinks...); err != nil {
		fmt.Fprintf(msg, "Could not write the schedules: %v\n", err)
		return exitError
	}

	csvio.PrintRanking(out, catalog, result.Ranking)
	fmt.Fprintf(out, "Schedules: %d in %d score groups\n", result.Ranking.Len(), len(result.Ranking))
	fmt.Fprintf(out, "Timer: %f ms\n", float64(time.Since(start).Microseconds())/1000.0)
	fmt.Fprintln(out, "Exported output to: "+cfg.ExportFile)
	return exitOK
}
