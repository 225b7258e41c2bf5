package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/http/response"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/services"
)

type DepartmentHandler struct {
	log               *logger.Logger
	departmentService services.DepartmentService
}

func NewDepartmentHandler(log *logger.Logger, departmentService services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		log:               log.With("handler", "DepartmentHandler"),
		departmentService: departmentService,
	}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var in services.DepartmentInput
	if err := bindJSON(c, &in); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.departmentService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	list, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var patch services.DepartmentPatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.departmentService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// AppointHead handles POST /api/departments/:id/teacher/:teacher_id.
func (h *DepartmentHandler) AppointHead(c *gin.Context) {
	departmentID, err := idParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	teacherID, err := idParam(c, "teacher_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	view, err := h.departmentService.AppointHead(c.Request.Context(), departmentID, teacherID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}
