package app

import (
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/yungbote/academics-backend/internal/config"
	"github.com/yungbote/academics-backend/internal/data/store"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/services"
	"github.com/yungbote/academics-backend/internal/services/association"
	"github.com/yungbote/academics-backend/internal/services/graph"
)

type Services struct {
	Assembler *graph.Assembler
	Mutator   *association.Mutator

	Student    services.StudentService
	Course     services.CourseService
	Teacher    services.TeacherService
	Department services.DepartmentService
}

func wireServices(log *logger.Logger, cfg *config.Config, st *store.Store, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	policy, err := graph.ParseMissingRelationPolicy(cfg.Graph.MissingRelation)
	if err != nil {
		return Services{}, fmt.Errorf("graph policy: %w", err)
	}
	assembler := graph.New(st, log,
		graph.WithMissingRelationPolicy(policy),
		graph.WithMetrics(metrics),
		graph.WithTracer(otel.Tracer(observability.TracerName)),
	)
	mutator := association.New(st, assembler, log, metrics)

	return Services{
		Assembler:  assembler,
		Mutator:    mutator,
		Student:    services.NewStudentService(log, st, assembler, mutator),
		Course:     services.NewCourseService(log, st, assembler, mutator),
		Teacher:    services.NewTeacherService(log, st, assembler),
		Department: services.NewDepartmentService(log, st, assembler, mutator),
	}, nil
}
