package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/config"
	httpserver "github.com/yungbote/academics-backend/internal/http"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg *config.Config, metrics *observability.Metrics, handlers Handlers) httpserver.RouterConfig {
	log.Info("Wiring router...")
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	serviceName := ""
	if cfg.Telemetry.OtelEnabled {
		serviceName = cfg.Telemetry.ServiceName
	}
	return httpserver.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		StudentHandler:    handlers.Student,
		CourseHandler:     handlers.Course,
		TeacherHandler:    handlers.Teacher,
		DepartmentHandler: handlers.Department,
		HealthHandler:     handlers.Health,
	}
}
