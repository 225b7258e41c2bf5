package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/http/response"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/services"
)

type TeacherHandler struct {
	log            *logger.Logger
	teacherService services.TeacherService
}

func NewTeacherHandler(log *logger.Logger, teacherService services.TeacherService) *TeacherHandler {
	return &TeacherHandler{
		log:            log.With("handler", "TeacherHandler"),
		teacherService: teacherService,
	}
}

func (h *TeacherHandler) Create(c *gin.Context) {
	var in services.TeacherInput
	if err := bindJSON(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.teacherService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *TeacherHandler) List(c *gin.Context) {
	list, err := h.teacherService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.teacherService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var patch services.TeacherPatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.teacherService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.teacherService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
