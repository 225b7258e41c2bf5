package services

import (
	"context"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/ctxutil"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/views"
)

type StudentService interface {
	Create(ctx context.Context, in StudentInput) (views.StudentView, error)
	List(ctx context.Context) ([]views.StudentView, error)
	Get(ctx context.Context, id int64) (views.StudentView, error)
	Courses(ctx context.Context, id int64) ([]views.CourseView, error)
	Update(ctx context.Context, id int64, patch StudentPatch) (views.StudentView, error)
	Delete(ctx context.Context, id int64) error
	Enroll(ctx context.Context, studentID, courseID int64) (views.StudentView, error)
}

type studentService struct {
	log       *logger.Logger
	store     Store
	assembler Assembler
	mutator   Mutator
}

func NewStudentService(baseLog *logger.Logger, store Store, assembler Assembler, mutator Mutator) StudentService {
	serviceLog := baseLog.With("service", "StudentService")
	return &studentService{
		log:       serviceLog,
		store:     store,
		assembler: assembler,
		mutator:   mutator,
	}
}

func (s *studentService) Create(ctx context.Context, in StudentInput) (views.StudentView, error) {
	const op = "create student"
	name, err := required(op, "name", in.Name)
	if err != nil {
		return views.StudentView{}, err
	}
	email, err := validEmail(op, in.Email)
	if err != nil {
		return views.StudentView{}, err
	}
	created, err := s.store.CreateStudent(ctx, &academics.Student{Name: name, Email: email})
	if err != nil {
		return views.StudentView{}, err
	}
	s.log.Info("Student created", append([]interface{}{"student_id", created.ID}, ctxutil.LogFields(ctx)...)...)
	return views.StudentWith(created, nil), nil
}

func (s *studentService) List(ctx context.Context) ([]views.StudentView, error) {
	roots, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembler.Students(ctx, roots)
}

func (s *studentService) Get(ctx context.Context, id int64) (views.StudentView, error) {
	root, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return views.StudentView{}, err
	}
	return s.assembler.Student(ctx, root)
}

// Courses lists the student's courses, each with its teacher.
func (s *studentService) Courses(ctx context.Context, id int64) ([]views.CourseView, error) {
	ok, err := s.store.ExistsByID(ctx, academics.KindStudent, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, academics.NotFound("list student courses", academics.KindStudent, id)
	}
	rows, err := s.store.CoursesByStudentIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	courses := make([]*academics.Course, 0, len(rows))
	for _, row := range rows {
		c := row.Course
		courses = append(courses, &c)
	}
	return s.assembler.CoursesWithTeacher(ctx, courses)
}

func (s *studentService) Update(ctx context.Context, id int64, patch StudentPatch) (views.StudentView, error) {
	const op = "update student"
	updates := map[string]interface{}{}
	if err := patchField(op, "name", patch.Name, updates); err != nil {
		return views.StudentView{}, err
	}
	if err := patchField(op, "email", patch.Email, updates); err != nil {
		return views.StudentView{}, err
	}
	if err := s.store.UpdateStudent(ctx, id, updates); err != nil {
		return views.StudentView{}, err
	}
	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.log.Info("Student deleted", append([]interface{}{"student_id", id}, ctxutil.LogFields(ctx)...)...)
	return nil
}

func (s *studentService) Enroll(ctx context.Context, studentID, courseID int64) (views.StudentView, error) {
	return s.mutator.EnrollStudent(ctx, studentID, courseID)
}
