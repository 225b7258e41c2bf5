package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/http/response"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/services"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var in services.CourseInput
	if err := bindJSON(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.courseService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *CourseHandler) List(c *gin.Context) {
	list, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *CourseHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.courseService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var patch services.CoursePatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.courseService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// AssignTeacher handles POST /api/courses/:id/teacher/:teacher_id.
func (h *CourseHandler) AssignTeacher(c *gin.Context) {
	courseID, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	teacherID, err := idParam(c, "teacher_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.courseService.AssignTeacher(c.Request.Context(), courseID, teacherID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}
