package main

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rhyrak/section-planner/internal/scheduler"
	"github.com/rhyrak/section-planner/pkg/model"
)

type groupResponse struct {
	Score     int        `json:"score"`
	Schedules [][]string `json:"schedules"`
}

type scheduleResponse struct {
	ID       string          `json:"id"`
	Accepted int             `json:"accepted"`
	Ranking  []groupResponse `json:"ranking"`
}

func (s *server) handleGetCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"courses": s.catalog.Courses(),
	})
}

func (s *server) handleGetSchedules(ctx *gin.Context) {
	files, err := os.ReadDir(s.dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	allIDs := []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if id, ok := strings.CutSuffix(file.Name(), scheduleSuffix); ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"scheduleIds": allIDs,
	})
}

func (s *server) handleGetScheduleWithId(ctx *gin.Context) {
	id, ok := scheduleID(ctx)
	if !ok {
		return
	}

	content, err := os.ReadFile(s.path(id, scheduleSuffix))
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": string(content),
	})
}

func (s *server) handleGetWorkbook(ctx *gin.Context) {
	id, ok := scheduleID(ctx)
	if !ok {
		return
	}

	path := s.path(id, workbookSuffix)
	if _, err := os.Stat(path); err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.FileAttachment(path, id+".xlsx")
}

func (s *server) handlePostSchedule(ctx *gin.Context) {
	var req scheduler.Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Courses) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no courses requested"})
		return
	}

	id, result, err := s.createAndExportSchedule(req)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	resp := scheduleResponse{ID: id, Accepted: len(result.Accepted), Ranking: []groupResponse{}}
	for _, group := range result.Ranking {
		g := groupResponse{Score: group.Score}
		for _, sc := range group.Schedules {
			g.Schedules = append(g.Schedules, sc.Schedule)
		}
		resp.Ranking = append(resp.Ranking, g)
	}
	ctx.JSON(http.StatusCreated, resp)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrUnknownCourse):
		return http.StatusNotFound
	case errors.Is(err, scheduler.ErrNoFeasibleSchedule):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidWindow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// scheduleID rejects ids that are not UUIDs.
func scheduleID(ctx *gin.Context) (string, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return "", false
	}
	return id.String(), true
}
