package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/academics-backend/internal/http/handlers"
	httpMW "github.com/yungbote/academics-backend/internal/http/middleware"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	CORSOrigins    []string
	RequestTimeout time.Duration

	StudentHandler    *httpH.StudentHandler
	CourseHandler     *httpH.CourseHandler
	TeacherHandler    *httpH.TeacherHandler
	DepartmentHandler *httpH.DepartmentHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, "/metrics"))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(httpMW.CORS(cfg.CORSOrigins))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(httpMW.RequestTimeout(cfg.RequestTimeout))
	{
		// Students
		if h := cfg.StudentHandler; h != nil {
			api.POST("/students", h.Create)
			api.GET("/students", h.List)
			api.GET("/students/:id", h.Get)
			api.GET("/students/:id/courses", h.Courses)
			api.PATCH("/students/:id", h.Update)
			api.DELETE("/students/:id", h.Delete)
			api.POST("/students/:id/courses/:course_id", h.Enroll)
		}

		// Courses
		if h := cfg.CourseHandler; h != nil {
			api.POST("/courses", h.Create)
			api.GET("/courses", h.List)
			api.GET("/courses/:id", h.Get)
			api.PATCH("/courses/:id", h.Update)
			api.DELETE("/courses/:id", h.Delete)
			api.POST("/courses/:id/teacher/:teacher_id", h.AssignTeacher)
		}

		// Teachers
		if h := cfg.TeacherHandler; h != nil {
			api.POST("/teachers", h.Create)
			api.GET("/teachers", h.List)
			api.GET("/teachers/:id", h.Get)
			api.PATCH("/teachers/:id", h.Update)
			api.DELETE("/teachers/:id", h.Delete)
		}

		// Departments
		if h := cfg.DepartmentHandler; h != nil {
			api.POST("/departments", h.Create)
			api.GET("/departments", h.List)
			api.GET("/departments/:id", h.Get)
			api.PATCH("/departments/:id", h.Update)
			api.DELETE("/departments/:id", h.Delete)
			api.POST("/departments/:id/teacher/:teacher_id", h.AppointHead)
		}
	}

	return r
}
