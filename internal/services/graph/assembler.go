// Package graph rebuilds nested views for root entities with one batched
// store call per kind of related data, never one call per root.
package graph

import (
	"context"

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

// Reader is the slice of the entity store the assembler reads through. Every
// method takes a key set and answers with a single round trip.
type Reader interface {
	TeachersByIDs(ctx context.Context, ids []int64) ([]*academics.Teacher, error)
	CoursesByTeacherIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Course, error)
	DepartmentsByHeadIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Department, error)
	StudentsByCourseIDs(ctx context.Context, courseIDs []int64) ([]*academics.EnrolledStudent, error)
	CoursesByStudentIDs(ctx context.Context, studentIDs []int64) ([]*academics.EnrolledCourse, error)
}

type Assembler struct {
	store   Reader
	log     *logger.Logger
	policy  MissingRelationPolicy
	metrics *observability.Metrics
	tracer  trace.Tracer
}

type Option func(*Assembler)

func WithMissingRelationPolicy(p MissingRelationPolicy) Option {
	return func(a *Assembler) { a.policy = p }
}

func WithMetrics(m *observability.Metrics) Option {
	return func(a *Assembler) { a.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(a *Assembler) {
		if t != nil {
			a.tracer = t
		}
	}
}

func New(store Reader, baseLog *logger.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		store:  store,
		log:    baseLog.With("service", "GraphAssembler"),
		policy: DropMissing,
		tracer: otel.Tracer(observability.TracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assembler) Policy() MissingRelationPolicy { return a.policy }

// branch is one independent batched fetch.
type branch struct {
	name string
	keys int
	run  func(ctx context.Context) error
}

// fanOut runs the branches concurrently and waits for all of them. The first
// failure cancels the rest and is returned as an aggregate failure.
func (a *Assembler) fanOut(ctx context.Context, op string, branches ...branch) error {
	if len(branches) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range branches {
		g.Go(func() error {
			bctx, span := a.tracer.Start(gctx, op+"."+b.name, trace.WithAttributes(
				attribute.Int("graph.keys", b.keys),
			))
			defer span.End()
			if err := b.run(bctx); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return academics.Wrap(academics.CodeAggregateFailure, op, err)
	}
	return nil
}

// missing applies the policy to a key absent from its batch result. A nil
// return means the relation is dropped.
func (a *Assembler) missing(ctx context.Context, op string, root academics.Kind, rootID int64, rel academics.Kind, relID int64) error {
	a.metrics.IncMissingRelation(string(root), string(rel))
	if a.policy == FailOnMissing {
		return academics.RelationMissing(op, rel, relID)
	}
	kv := append([]interface{}{
		"op", op,
		"root_kind", root,
		"root_id", rootID,
		"relation_kind", rel,
		"relation_id", relID,
	}, ctxutil.LogFields(ctx)...)
	a.log.Warn("Related entity missing from batch result; relation left unset", kv...)
	return nil
}

func (a *Assembler) finish(kind academics.Kind, err error) {
	a.metrics.ObserveAssembly(string(kind), err)
}

// Courses attaches each course's teacher and roster. Teachers and rosters
// are fetched concurrently.
func (a *Assembler) Courses(ctx context.Context, roots []*academics.Course) (out []views.CourseView, err error) {
	const op = "assemble courses"
	if len(roots) == 0 {
		return []views.CourseView{}, nil
	}
	defer func() { a.finish(academics.KindCourse, err) }()

	teacherIDs := distinctKeys(roots, func(c *academics.Course) (int64, bool) { return ptrKey(c.TeacherID) })
	courseIDs := distinctKeys(roots, func(c *academics.Course) (int64, bool) { return c.ID, true })

	var (
		teachers []*academics.Teacher
		roster   []*academics.EnrolledStudent
	)
	branches := []branch{{
		name: "roster",
		keys: len(courseIDs),
		run: func(ctx context.Context) (err error) {
			roster, err = a.store.StudentsByCourseIDs(ctx, courseIDs)
			return err
		},
	}}
	if len(teacherIDs) > 0 {
		branches = append(branches, branch{
			name: "teachers",
			keys: len(teacherIDs),
			run: func(ctx context.Context) (err error) {
				teachers, err = a.store.TeachersByIDs(ctx, teacherIDs)
				return err
			},
		})
	}
	if err := a.fanOut(ctx, op, branches...); err != nil {
		return nil, err
	}

	teacherByID := indexBy(teachers, func(t *academics.Teacher) (int64, bool) { return t.ID, true })
	studentsByCourse := groupBy(roster,
		func(r *academics.EnrolledStudent) (int64, bool) { return r.CourseID, true },
		func(r *academics.EnrolledStudent) *academics.Student { s := r.Student; return &s },
	)

	out = make([]views.CourseView, 0, len(roots))
	for _, c := range roots {
		teacher, err := a.teacherFor(ctx, op, academics.KindCourse, c, teacherByID)
		if err != nil {
			return nil, err
		}
		out = append(out, views.CourseWith(c, teacher, studentsByCourse[c.ID]))
	}
	return out, nil
}

func (a *Assembler) Course(ctx context.Context, root *academics.Course) (views.CourseView, error) {
	out, err := a.Courses(ctx, []*academics.Course{root})
	if err != nil {
		return views.CourseView{}, err
	}
	return out[0], nil
}

// CoursesWithTeacher attaches only the teacher; rosters are left unset.
func (a *Assembler) CoursesWithTeacher(ctx context.Context, roots []*academics.Course) (out []views.CourseView, err error) {
	const op = "assemble courses with teacher"
	if len(roots) == 0 {
		return []views.CourseView{}, nil
	}
	defer func() { a.finish(academics.KindCourse, err) }()

	teacherByID, err := a.teachersFor(ctx, op, roots)
	if err != nil {
		return nil, err
	}
	return a.attachTeachers(ctx, op, academics.KindCourse, roots, teacherByID)
}

// Students attaches each student's courses, each carrying its teacher. The
// teacher key set is only known once the schedules are loaded, so the two
// fetches run in sequence.
func (a *Assembler) Students(ctx context.Context, roots []*academics.Student) (out []views.StudentView, err error) {
	const op = "assemble students"
	if len(roots) == 0 {
		return []views.StudentView{}, nil
	}
	defer func() { a.finish(academics.KindStudent, err) }()

	studentIDs := distinctKeys(roots, func(s *academics.Student) (int64, bool) { return s.ID, true })

	var schedule []*academics.EnrolledCourse
	if err := a.fanOut(ctx, op, branch{
		name: "schedule",
		keys: len(studentIDs),
		run: func(ctx context.Context) (err error) {
			schedule, err = a.store.CoursesByStudentIDs(ctx, studentIDs)
			return err
		},
	}); err != nil {
		return nil, err
	}

	courses := make([]*academics.Course, 0, len(schedule))
	for _, row := range schedule {
		c := row.Course
		courses = append(courses, &c)
	}
	teacherByID, err := a.teachersFor(ctx, op, courses)
	if err != nil {
		return nil, err
	}
	courseViews, err := a.attachTeachers(ctx, op, academics.KindCourse, courses, teacherByID)
	if err != nil {
		return nil, err
	}

	coursesByStudent := make(map[int64][]views.CourseView, len(roots))
	for i, row := range schedule {
		coursesByStudent[row.StudentID] = append(coursesByStudent[row.StudentID], courseViews[i])
	}

	out = make([]views.StudentView, 0, len(roots))
	for _, s := range roots {
		out = append(out, views.StudentWith(s, coursesByStudent[s.ID]))
	}
	return out, nil
}

func (a *Assembler) Student(ctx context.Context, root *academics.Student) (views.StudentView, error) {
	out, err := a.Students(ctx, []*academics.Student{root})
	if err != nil {
		return views.StudentView{}, err
	}
	return out[0], nil
}

// Teachers attaches taught courses and the headed department. Both lookups
// are keyed by teacher id and run concurrently.
func (a *Assembler) Teachers(ctx context.Context, roots []*academics.Teacher) (out []views.TeacherView, err error) {
	const op = "assemble teachers"
	if len(roots) == 0 {
		return []views.TeacherView{}, nil
	}
	defer func() { a.finish(academics.KindTeacher, err) }()

	teacherIDs := distinctKeys(roots, func(t *academics.Teacher) (int64, bool) { return t.ID, true })

	var (
		courses     []*academics.Course
		departments []*academics.Department
	)
	if err := a.fanOut(ctx, op,
		branch{
			name: "courses",
			keys: len(teacherIDs),
			run: func(ctx context.Context) (err error) {
				courses, err = a.store.CoursesByTeacherIDs(ctx, teacherIDs)
				return err
			},
		},
		branch{
			name: "departments",
			keys: len(teacherIDs),
			run: func(ctx context.Context) (err error) {
				departments, err = a.store.DepartmentsByHeadIDs(ctx, teacherIDs)
				return err
			},
		},
	); err != nil {
		return nil, err
	}

	coursesByTeacher := groupBy(courses,
		func(c *academics.Course) (int64, bool) { return ptrKey(c.TeacherID) },
		func(c *academics.Course) *academics.Course { return c },
	)
	departmentByHead := indexBy(departments, func(d *academics.Department) (int64, bool) {
		return ptrKey(d.HeadOfDepartmentID)
	})

	out = make([]views.TeacherView, 0, len(roots))
	for _, t := range roots {
		out = append(out, views.TeacherWith(t, coursesByTeacher[t.ID], departmentByHead[t.ID]))
	}
	return out, nil
}

func (a *Assembler) Teacher(ctx context.Context, root *academics.Teacher) (views.TeacherView, error) {
	out, err := a.Teachers(ctx, []*academics.Teacher{root})
	if err != nil {
		return views.TeacherView{}, err
	}
	return out[0], nil
}

// Departments attaches each department's head teacher.
func (a *Assembler) Departments(ctx context.Context, roots []*academics.Department) (out []views.DepartmentView, err error) {
	const op = "assemble departments"
	if len(roots) == 0 {
		return []views.DepartmentView{}, nil
	}
	defer func() { a.finish(academics.KindDepartment, err) }()

	headIDs := distinctKeys(roots, func(d *academics.Department) (int64, bool) { return ptrKey(d.HeadOfDepartmentID) })

	var heads []*academics.Teacher
	if len(headIDs) > 0 {
		if err := a.fanOut(ctx, op, branch{
			name: "heads",
			keys: len(headIDs),
			run: func(ctx context.Context) (err error) {
				heads, err = a.store.TeachersByIDs(ctx, headIDs)
				return err
			},
		}); err != nil {
			return nil, err
		}
	}
	headByID := indexBy(heads, func(t *academics.Teacher) (int64, bool) { return t.ID, true })

	out = make([]views.DepartmentView, 0, len(roots))
	for _, d := range roots {
		var head *academics.Teacher
		if id, ok := ptrKey(d.HeadOfDepartmentID); ok {
			head = headByID[id]
			if head == nil {
				if err := a.missing(ctx, op, academics.KindDepartment, d.ID, academics.KindTeacher, id); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, views.DepartmentWith(d, head))
	}
	return out, nil
}

func (a *Assembler) Department(ctx context.Context, root *academics.Department) (views.DepartmentView, error) {
	out, err := a.Departments(ctx, []*academics.Department{root})
	if err != nil {
		return views.DepartmentView{}, err
	}
	return out[0], nil
}

// teachersFor loads the distinct non-null teachers of courses in one call,
// or none when no course has a teacher.
func (a *Assembler) teachersFor(ctx context.Context, op string, courses []*academics.Course) (map[int64]*academics.Teacher, error) {
	teacherIDs := distinctKeys(courses, func(c *academics.Course) (int64, bool) { return ptrKey(c.TeacherID) })
	if len(teacherIDs) == 0 {
		return map[int64]*academics.Teacher{}, nil
	}
	var teachers []*academics.Teacher
	if err := a.fanOut(ctx, op, branch{
		name: "teachers",
		keys: len(teacherIDs),
		run: func(ctx context.Context) (err error) {
			teachers, err = a.store.TeachersByIDs(ctx, teacherIDs)
			return err
		},
	}); err != nil {
		return nil, err
	}
	return indexBy(teachers, func(t *academics.Teacher) (int64, bool) { return t.ID, true }), nil
}

func (a *Assembler) attachTeachers(ctx context.Context, op string, root academics.Kind, courses []*academics.Course, teacherByID map[int64]*academics.Teacher) ([]views.CourseView, error) {
	out := make([]views.CourseView, 0, len(courses))
	for _, c := range courses {
		teacher, err := a.teacherFor(ctx, op, root, c, teacherByID)
		if err != nil {
			return nil, err
		}
		out = append(out, views.CourseWithTeacher(c, teacher))
	}
	return out, nil
}

func (a *Assembler) teacherFor(ctx context.Context, op string, root academics.Kind, c *academics.Course, teacherByID map[int64]*academics.Teacher) (*academics.Teacher, error) {
	id, ok := ptrKey(c.TeacherID)
	if !ok {
		return nil, nil
	}
	if t := teacherByID[id]; t != nil {
		return t, nil
	}
	return nil, a.missing(ctx, op, root, c.ID, academics.KindTeacher, id)
}
