package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rhyrak/section-planner/internal/config"
	"github.com/rhyrak/section-planner/internal/csvio"
	"github.com/rhyrak/section-planner/internal/logger"
	"github.com/rhyrak/section-planner/internal/scheduler"
)

const GeneratedDir = "db/generated"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog, err := scheduler.LoadCatalog(csvio.NewLoader(cfg.Scheduler.CatalogFile, cfg.Scheduler.Delimiter), cfg.Scheduler.BucketWidth)
	if err != nil {
		logr.Fatal("failed to load catalog", zap.String("file", cfg.Scheduler.CatalogFile), zap.Error(err))
	}
	logr.Info("catalog loaded", zap.Int("sections", catalog.Len()), zap.Int("courses", len(catalog.Courses())))

	srv := &server{
		catalog: catalog,
		planner: scheduler.NewPlanner(cfg.Scheduler, logr),
		dir:     GeneratedDir,
		logr:    logr,
	}
	r := newRouter(srv, logr, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newRouter(srv *server, logr *zap.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.GinMiddleware(logr))
	r.Use(cors(origins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/courses", srv.handleGetCourses)
	r.GET("/schedules", srv.handleGetSchedules)
	r.GET("/schedules/:id", srv.handleGetScheduleWithId)
	r.GET("/schedules/:id/workbook", srv.handleGetWorkbook)
	r.POST("/schedules", srv.handlePostSchedule)
	return r
}

// cors allows every origin when the list is empty.
func cors(allowed []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := origins[strings.TrimRight(origin, "/")]; len(origins) == 0 || ok {
			if origin == "" {
				origin = "*"
			}
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
