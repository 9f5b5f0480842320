package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/service/report"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/report")
	{
		reports.GET("/manager", h.GetManagerReport)
	}
}

func (h *Handler) GetManagerReport(c *gin.Context) {
	start, err := handler.ParseDateTime(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid start date"))
		return
	}

	end, err := handler.ParseDateTime(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid end date"))
		return
	}

	managerReport, err := h.service.BuildManagerReport(c.Request.Context(), start, end)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(managerReport))
}
