package services

import (
	"context"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/ctxutil"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/views"
)

type CourseService interface {
	Create(ctx context.Context, in CourseInput) (views.CourseView, error)
	List(ctx context.Context) ([]views.CourseView, error)
	Get(ctx context.Context, id int64) (views.CourseView, error)
	Update(ctx context.Context, id int64, patch CoursePatch) (views.CourseView, error)
	Delete(ctx context.Context, id int64) error
	AssignTeacher(ctx context.Context, courseID, teacherID int64) (views.CourseView, error)
}

type courseService struct {
	log       *logger.Logger
	store     Store
	assembler Assembler
	mutator   Mutator
}

func NewCourseService(baseLog *logger.Logger, store Store, assembler Assembler, mutator Mutator) CourseService {
	serviceLog := baseLog.With("service", "CourseService")
	return &courseService{
		log:       serviceLog,
		store:     store,
		assembler: assembler,
		mutator:   mutator,
	}
}

func (cs *courseService) Create(ctx context.Context, in CourseInput) (views.CourseView, error) {
	title, err := required("create course", "title", in.Title)
	if err != nil {
		return views.CourseView{}, err
	}
	created, err := cs.store.CreateCourse(ctx, &academics.Course{Title: title})
	if err != nil {
		return views.CourseView{}, err
	}
	cs.log.Info("Course created", append([]interface{}{"course_id", created.ID}, ctxutil.LogFields(ctx)...)...)
	return views.CourseWith(created, nil, nil), nil
}

func (cs *courseService) List(ctx context.Context) ([]views.CourseView, error) {
	roots, err := cs.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return cs.assembler.Courses(ctx, roots)
}

func (cs *courseService) Get(ctx context.Context, id int64) (views.CourseView, error) {
	root, err := cs.store.GetCourse(ctx, id)
	if err != nil {
		return views.CourseView{}, err
	}
	return cs.assembler.Course(ctx, root)
}

func (cs *courseService) Update(ctx context.Context, id int64, patch CoursePatch) (views.CourseView, error) {
	updates := map[string]interface{}{}
	if err := patchField("update course", "title", patch.Title, updates); err != nil {
		return views.CourseView{}, err
	}
	if err := cs.store.UpdateCourse(ctx, id, updates); err != nil {
		return views.CourseView{}, err
	}
	return cs.Get(ctx, id)
}

func (cs *courseService) Delete(ctx context.Context, id int64) error {
	if err := cs.store.DeleteCourse(ctx, id); err != nil {
		return err
	}
	cs.log.Info("Course deleted", append([]interface{}{"course_id", id}, ctxutil.LogFields(ctx)...)...)
	return nil
}

func (cs *courseService) AssignTeacher(ctx context.Context, courseID, teacherID int64) (views.CourseView, error) {
	return cs.mutator.AssignCourseTeacher(ctx, courseID, teacherID)
}
