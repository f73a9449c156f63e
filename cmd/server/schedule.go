package main

import (
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rhyrak/section-planner/internal/csvio"
	"github.com/rhyrak/section-planner/internal/scheduler"
	"github.com/rhyrak/section-planner/internal/xlsx"
	"github.com/rhyrak/section-planner/pkg/model"
)

const (
	scheduleSuffix     = "-schedule.csv"
	combinationsSuffix = "-combinations.txt"
	workbookSuffix     = "-schedule.xlsx"
)

// server answers requests against a catalog loaded once at start.
type server struct {
	catalog *model.Catalog
	planner *scheduler.Planner
	dir     string
	logr    *zap.Logger
}

func (s *server) path(id, suffix string) string {
	return filepath.Join(s.dir, id+suffix)
}

// createAndExportSchedule plans req and writes every output under a fresh id.
func (s *server) createAndExportSchedule(req scheduler.Request) (string, *scheduler.Result, error) {
	result, err := s.planner.Plan(s.catalog, req)
	if err != nil {
		return "", result, err
	}

	id := uuid.NewString()
	err = s.planner.Export(s.catalog, result,
		&csvio.Exporter{RankingPath: s.path(id, scheduleSuffix), CombinationsPath: s.path(id, combinationsSuffix)},
		xlsx.NewExporter(s.path(id, workbookSuffix)),
	)
	if err != nil {
		return "", nil, err
	}
	s.logr.Info("schedules exported", zap.String("id", id), zap.Int("accepted", len(result.Accepted)))
	return id, result, nil
}
