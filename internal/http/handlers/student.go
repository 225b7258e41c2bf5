package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/http/response"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/services"
)

type StudentHandler struct {
	log            *logger.Logger
	studentService services.StudentService
}

func NewStudentHandler(log *logger.Logger, studentService services.StudentService) *StudentHandler {
	return &StudentHandler{
		log:            log.With("handler", "StudentHandler"),
		studentService: studentService,
	}
}

// POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var in services.StudentInput
	if err := bindJSON(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.studentService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

// GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	list, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/students/:id/courses
func (h *StudentHandler) Courses(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	courses, err := h.studentService.Courses(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, courses)
}

// PATCH /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var patch services.StudentPatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.studentService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /api/students/:id/courses/:course_id
func (h *StudentHandler) Enroll(c *gin.Context) {
	studentID, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	courseID, err := idParam(c, "course_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.studentService.Enroll(c.Request.Context(), studentID, courseID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}
