// Package association changes a single relationship edge after confirming
// both endpoints exist, then returns the freshly assembled view of the owner.
package association

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/ctxutil"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/views"
)

// Store is what the mutator needs from the entity store.
type Store interface {
	ExistsByID(ctx context.Context, kind academics.Kind, id int64) (bool, error)
	DepartmentsByHeadIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Department, error)
	WriteRelationship(ctx context.Context, edge academics.EdgeKind, ownerID, targetID int64) error
	GetCourse(ctx context.Context, id int64) (*academics.Course, error)
	GetStudent(ctx context.Context, id int64) (*academics.Student, error)
	GetDepartment(ctx context.Context, id int64) (*academics.Department, error)
}

// Assembler rebuilds the single affected root.
type Assembler interface {
	Course(ctx context.Context, root *academics.Course) (views.CourseView, error)
	Student(ctx context.Context, root *academics.Student) (views.StudentView, error)
	Department(ctx context.Context, root *academics.Department) (views.DepartmentView, error)
}

// State is the per-call progress of a mutation. It is never persisted.
type State string

const (
	StateStart        State = "start"
	StateChecking     State = "checking"
	StateRejected     State = "rejected"
	StateMutating     State = "mutating"
	StateReassembling State = "reassembling"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

type Mutator struct {
	store     Store
	assembler Assembler
	log       *logger.Logger
	metrics   *observability.Metrics
	tracer    trace.Tracer
}

func New(store Store, assembler Assembler, baseLog *logger.Logger, metrics *observability.Metrics) *Mutator {
	return &Mutator{
		store:     store,
		assembler: assembler,
		log:       baseLog.With("service", "AssociationMutator"),
		metrics:   metrics,
		tracer:    otel.Tracer(observability.TracerName),
	}
}

// AssignCourseTeacher sets course.teacher_id.
func (m *Mutator) AssignCourseTeacher(ctx context.Context, courseID, teacherID int64) (views.CourseView, error) {
	const edge = academics.EdgeCourseTeacher
	return run(ctx, m, edge, courseID, teacherID, func(ctx context.Context) (views.CourseView, error) {
		course, err := m.store.GetCourse(ctx, courseID)
		if err != nil {
			return views.CourseView{}, err
		}
		return m.assembler.Course(ctx, course)
	})
}

// AppointDepartmentHead makes teacherID the head of departmentID. A teacher
// heads at most one department; appointing the current head again is a no-op
// write that still succeeds.
func (m *Mutator) AppointDepartmentHead(ctx context.Context, departmentID, teacherID int64) (views.DepartmentView, error) {
	const edge = academics.EdgeDepartmentHead
	return run(ctx, m, edge, departmentID, teacherID, func(ctx context.Context) (views.DepartmentView, error) {
		dept, err := m.store.GetDepartment(ctx, departmentID)
		if err != nil {
			return views.DepartmentView{}, err
		}
		return m.assembler.Department(ctx, dept)
	})
}

// EnrollStudent adds the (student, course) join row. Enrolling twice
// surfaces the store's constraint violation unchanged.
func (m *Mutator) EnrollStudent(ctx context.Context, studentID, courseID int64) (views.StudentView, error) {
	const edge = academics.EdgeStudentCourse
	return run(ctx, m, edge, studentID, courseID, func(ctx context.Context) (views.StudentView, error) {
		student, err := m.store.GetStudent(ctx, studentID)
		if err != nil {
			return views.StudentView{}, err
		}
		return m.assembler.Student(ctx, student)
	})
}

// run drives one call through checking, mutating and reassembling.
func run[V any](ctx context.Context, m *Mutator, edge academics.EdgeKind, ownerID, targetID int64, reassemble func(context.Context) (V, error)) (out V, err error) {
	ctx, span := m.tracer.Start(ctx, "association."+string(edge), trace.WithAttributes(
		attribute.Int64("association.owner_id", ownerID),
		attribute.Int64("association.target_id", targetID),
	))
	state := StateStart
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.String("association.state", string(state)))
		span.End()
		m.metrics.ObserveAssociation(string(edge), string(state))
	}()

	transition := func(next State) {
		kv := append([]interface{}{
			"edge", edge, "owner_id", ownerID, "target_id", targetID,
			"from", state, "to", next,
		}, ctxutil.LogFields(ctx)...)
		m.log.Debug("Association state change", kv...)
		state = next
	}

	transition(StateChecking)
	if err := m.check(ctx, edge, ownerID, targetID); err != nil {
		if academics.IsCode(err, academics.CodeNotFound) || academics.IsCode(err, academics.CodeConstraintViolation) {
			transition(StateRejected)
		} else {
			transition(StateFailed)
		}
		return out, err
	}

	transition(StateMutating)
	if err := m.store.WriteRelationship(ctx, edge, ownerID, targetID); err != nil {
		transition(StateFailed)
		return out, err
	}

	transition(StateReassembling)
	out, err = reassemble(ctx)
	if err != nil {
		transition(StateFailed)
		return out, err
	}
	transition(StateDone)
	return out, nil
}

// check probes both endpoints concurrently, plus head uniqueness for
// department_head, and decides before any write happens.
func (m *Mutator) check(ctx context.Context, edge academics.EdgeKind, ownerID, targetID int64) error {
	op := "set " + string(edge)
	ownerKind, targetKind, ok := edge.Endpoints()
	if !ok {
		return academics.Validation(op, "unknown edge kind "+string(edge))
	}

	var (
		ownerExists, targetExists bool
		headed                    []*academics.Department
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ownerExists, err = m.store.ExistsByID(gctx, ownerKind, ownerID)
		return err
	})
	g.Go(func() (err error) {
		targetExists, err = m.store.ExistsByID(gctx, targetKind, targetID)
		return err
	})
	if edge == academics.EdgeDepartmentHead {
		g.Go(func() (err error) {
			headed, err = m.store.DepartmentsByHeadIDs(gctx, []int64{targetID})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !ownerExists {
		return academics.NotFound(op, ownerKind, ownerID)
	}
	if !targetExists {
		return academics.NotFound(op, targetKind, targetID)
	}
	for _, d := range headed {
		if d.ID != ownerID {
			return academics.ConstraintViolation(op,
				fmt.Sprintf("teacher %d already heads department %d", targetID, d.ID), nil)
		}
	}
	return nil
}
