package app

import (
	httpH "github.com/yungbote/academics-backend/internal/http/handlers"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type Handlers struct {
	Student    *httpH.StudentHandler
	Course     *httpH.CourseHandler
	Teacher    *httpH.TeacherHandler
	Department *httpH.DepartmentHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, services Services, db httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Student:    httpH.NewStudentHandler(log, services.Student),
		Course:     httpH.NewCourseHandler(log, services.Course),
		Teacher:    httpH.NewTeacherHandler(log, services.Teacher),
		Department: httpH.NewDepartmentHandler(log, services.Department),
		Health:     httpH.NewHealthHandler(log, db),
	}
}
