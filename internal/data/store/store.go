package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/data/repos"
	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

// Repos are the table repositories the store composes.
type Repos struct {
	Students    repos.StudentRepo
	Courses     repos.CourseRepo
	Teachers    repos.TeacherRepo
	Departments repos.DepartmentRepo
	Enrollments repos.CourseStudentRepo
}

func NewRepos(db *gorm.DB, baseLog *logger.Logger) Repos {
	return Repos{
		Students:    repos.NewStudentRepo(db, baseLog),
		Courses:     repos.NewCourseRepo(db, baseLog),
		Teachers:    repos.NewTeacherRepo(db, baseLog),
		Departments: repos.NewDepartmentRepo(db, baseLog),
		Enrollments: repos.NewCourseStudentRepo(db, baseLog),
	}
}

// Store is the entity store: point, batched and foreign-key lookups,
// existence probes, relationship writes and single-row CRUD. It never
// caches; every call reads the database.
type Store struct {
	db      *gorm.DB
	log     *logger.Logger
	r       Repos
	metrics *observability.Metrics
}

func New(db *gorm.DB, baseLog *logger.Logger, r Repos, metrics *observability.Metrics) *Store {
	return &Store{
		db:      db,
		log:     baseLog.With("service", "EntityStore"),
		r:       r,
		metrics: metrics,
	}
}

func (s *Store) done(op string, start time.Time, err error) error {
	err = MapError(op, err)
	s.metrics.ObserveStoreCall(op, err, time.Since(start))
	return err
}

// ---- batched lookups ----

func (s *Store) StudentsByIDs(ctx context.Context, ids []int64) ([]*academics.Student, error) {
	start := time.Now()
	rows, err := s.r.Students.GetByIDs(ctx, nil, ids)
	return rows, s.done("students_by_ids", start, err)
}

func (s *Store) CoursesByIDs(ctx context.Context, ids []int64) ([]*academics.Course, error) {
	start := time.Now()
	rows, err := s.r.Courses.GetByIDs(ctx, nil, ids)
	return rows, s.done("courses_by_ids", start, err)
}

func (s *Store) TeachersByIDs(ctx context.Context, ids []int64) ([]*academics.Teacher, error) {
	start := time.Now()
	rows, err := s.r.Teachers.GetByIDs(ctx, nil, ids)
	return rows, s.done("teachers_by_ids", start, err)
}

func (s *Store) DepartmentsByIDs(ctx context.Context, ids []int64) ([]*academics.Department, error) {
	start := time.Now()
	rows, err := s.r.Departments.GetByIDs(ctx, nil, ids)
	return rows, s.done("departments_by_ids", start, err)
}

func (s *Store) CoursesByTeacherIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Course, error) {
	start := time.Now()
	rows, err := s.r.Courses.GetByTeacherIDs(ctx, nil, teacherIDs)
	return rows, s.done("courses_by_teacher_ids", start, err)
}

func (s *Store) DepartmentsByHeadIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Department, error) {
	start := time.Now()
	rows, err := s.r.Departments.GetByHeadIDs(ctx, nil, teacherIDs)
	return rows, s.done("departments_by_head_ids", start, err)
}

// StudentsByCourseIDs returns one row per (course, student) enrollment.
func (s *Store) StudentsByCourseIDs(ctx context.Context, courseIDs []int64) ([]*academics.EnrolledStudent, error) {
	start := time.Now()
	rows, err := s.r.Enrollments.StudentsByCourseIDs(ctx, nil, courseIDs)
	return rows, s.done("students_by_course_ids", start, err)
}

// CoursesByStudentIDs returns one row per (student, course) enrollment.
func (s *Store) CoursesByStudentIDs(ctx context.Context, studentIDs []int64) ([]*academics.EnrolledCourse, error) {
	start := time.Now()
	rows, err := s.r.Enrollments.CoursesByStudentIDs(ctx, nil, studentIDs)
	return rows, s.done("courses_by_student_ids", start, err)
}

// ---- point lookups ----

func (s *Store) GetStudent(ctx context.Context, id int64) (*academics.Student, error) {
	rows, err := s.StudentsByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, academics.NotFound("get student", academics.KindStudent, id)
	}
	return rows[0], nil
}

func (s *Store) GetCourse(ctx context.Context, id int64) (*academics.Course, error) {
	rows, err := s.CoursesByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, academics.NotFound("get course", academics.KindCourse, id)
	}
	return rows[0], nil
}

func (s *Store) GetTeacher(ctx context.Context, id int64) (*academics.Teacher, error) {
	rows, err := s.TeachersByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, academics.NotFound("get teacher", academics.KindTeacher, id)
	}
	return rows[0], nil
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*academics.Department, error) {
	rows, err := s.DepartmentsByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, academics.NotFound("get department", academics.KindDepartment, id)
	}
	return rows[0], nil
}

// ExistsByID probes a single row of the given kind.
func (s *Store) ExistsByID(ctx context.Context, kind academics.Kind, id int64) (bool, error) {
	start := time.Now()
	var (
		ok  bool
		err error
	)
	switch kind {
	case academics.KindStudent:
		ok, err = s.r.Students.ExistsByID(ctx, nil, id)
	case academics.KindCourse:
		ok, err = s.r.Courses.ExistsByID(ctx, nil, id)
	case academics.KindTeacher:
		ok, err = s.r.Teachers.ExistsByID(ctx, nil, id)
	case academics.KindDepartment:
		ok, err = s.r.Departments.ExistsByID(ctx, nil, id)
	default:
		return false, academics.Validation("exists", "unknown entity kind "+string(kind))
	}
	return ok, s.done("exists_"+string(kind), start, err)
}

// WriteRelationship sets a single edge. When the owner row is gone the write
// matches nothing and a not_found naming the owner is returned.
func (s *Store) WriteRelationship(ctx context.Context, edge academics.EdgeKind, ownerID, targetID int64) error {
	owner, _, ok := edge.Endpoints()
	if !ok {
		return academics.Validation("write relationship", "unknown edge kind "+string(edge))
	}
	start := time.Now()
	var (
		n   int64
		err error
	)
	switch edge {
	case academics.EdgeCourseTeacher:
		n, err = s.r.Courses.SetTeacher(ctx, nil, ownerID, targetID)
	case academics.EdgeDepartmentHead:
		n, err = s.r.Departments.SetHead(ctx, nil, ownerID, targetID)
	case academics.EdgeStudentCourse:
		n, err = s.r.Enrollments.Enroll(ctx, nil, ownerID, targetID)
	}
	if err = s.done("write_"+string(edge), start, err); err != nil {
		return err
	}
	if n == 0 {
		return academics.NotFound("write "+string(edge), owner, ownerID)
	}
	return nil
}

// ---- listing ----

func (s *Store) ListStudents(ctx context.Context) ([]*academics.Student, error) {
	start := time.Now()
	rows, err := s.r.Students.List(ctx, nil)
	return rows, s.done("list_students", start, err)
}

func (s *Store) ListCourses(ctx context.Context) ([]*academics.Course, error) {
	start := time.Now()
	rows, err := s.r.Courses.List(ctx, nil)
	return rows, s.done("list_courses", start, err)
}

func (s *Store) ListTeachers(ctx context.Context) ([]*academics.Teacher, error) {
	start := time.Now()
	rows, err := s.r.Teachers.List(ctx, nil)
	return rows, s.done("list_teachers", start, err)
}

func (s *Store) ListDepartments(ctx context.Context) ([]*academics.Department, error) {
	start := time.Now()
	rows, err := s.r.Departments.List(ctx, nil)
	return rows, s.done("list_departments", start, err)
}

// ---- single-row writes ----

func (s *Store) CreateStudent(ctx context.Context, st *academics.Student) (*academics.Student, error) {
	start := time.Now()
	rows, err := s.r.Students.Create(ctx, nil, []*academics.Student{st})
	if err = s.done("create_student", start, err); err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *Store) CreateCourse(ctx context.Context, c *academics.Course) (*academics.Course, error) {
	start := time.Now()
	rows, err := s.r.Courses.Create(ctx, nil, []*academics.Course{c})
	if err = s.done("create_course", start, err); err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *Store) CreateTeacher(ctx context.Context, t *academics.Teacher) (*academics.Teacher, error) {
	start := time.Now()
	rows, err := s.r.Teachers.Create(ctx, nil, []*academics.Teacher{t})
	if err = s.done("create_teacher", start, err); err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *Store) CreateDepartment(ctx context.Context, d *academics.Department) (*academics.Department, error) {
	start := time.Now()
	rows, err := s.r.Departments.Create(ctx, nil, []*academics.Department{d})
	if err = s.done("create_department", start, err); err != nil {
		return nil, err
	}
	return rows[0], nil
}

// UpdateStudent applies a partial update of scalar columns.
func (s *Store) UpdateStudent(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.update(ctx, "update_student", academics.KindStudent, id, updates, s.r.Students.UpdateFields)
}

func (s *Store) UpdateCourse(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.update(ctx, "update_course", academics.KindCourse, id, updates, s.r.Courses.UpdateFields)
}

func (s *Store) UpdateTeacher(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.update(ctx, "update_teacher", academics.KindTeacher, id, updates, s.r.Teachers.UpdateFields)
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, updates map[string]interface{}) error {
	return s.update(ctx, "update_department", academics.KindDepartment, id, updates, s.r.Departments.UpdateFields)
}

type updateFunc func(ctx context.Context, tx *gorm.DB, id int64, updates map[string]interface{}) (int64, error)

func (s *Store) update(ctx context.Context, op string, kind academics.Kind, id int64, updates map[string]interface{}, fn updateFunc) error {
	if len(updates) == 0 {
		ok, err := s.ExistsByID(ctx, kind, id)
		if err != nil {
			return err
		}
		if !ok {
			return academics.NotFound(strings.ReplaceAll(op, "_", " "), kind, id)
		}
		return nil
	}
	start := time.Now()
	n, err := fn(ctx, nil, id, updates)
	if err = s.done(op, start, err); err != nil {
		return err
	}
	if n == 0 {
		return academics.NotFound(strings.ReplaceAll(op, "_", " "), kind, id)
	}
	return nil
}

// DeleteStudent removes the student and its enrollments. Deleting a missing
// row is not an error.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.r.Enrollments.DeleteByStudentIDs(ctx, tx, []int64{id}); err != nil {
			return err
		}
		_, err := s.r.Students.DeleteByIDs(ctx, tx, []int64{id})
		return err
	})
	return s.done("delete_student", start, err)
}

// DeleteCourse removes the course and its roster rows.
func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.r.Enrollments.DeleteByCourseIDs(ctx, tx, []int64{id}); err != nil {
			return err
		}
		_, err := s.r.Courses.DeleteByIDs(ctx, tx, []int64{id})
		return err
	})
	return s.done("delete_course", start, err)
}

// DeleteTeacher removes the teacher and clears every course.teacher_id and
// department.head_of_department_id that referenced it.
func (s *Store) DeleteTeacher(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.r.Courses.ClearTeacher(ctx, tx, []int64{id}); err != nil {
			return err
		}
		if err := s.r.Departments.ClearHead(ctx, tx, []int64{id}); err != nil {
			return err
		}
		_, err := s.r.Teachers.DeleteByIDs(ctx, tx, []int64{id})
		return err
	})
	return s.done("delete_teacher", start, err)
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	start := time.Now()
	_, err := s.r.Departments.DeleteByIDs(ctx, nil, []int64{id})
	return s.done("delete_department", start, err)
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
