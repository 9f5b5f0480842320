package statistics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/service/statistics"
)

type Handler struct {
	service *statistics.Service
}

func NewHandler(service *statistics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/statistics")
	{
		stats.GET("/manager", h.GetManagerStats)
		stats.GET("/receptionist/:id", h.GetReceptionistStats)
	}
}

func (h *Handler) GetManagerStats(c *gin.Context) {
	stats, err := h.service.ManagerStats(c.Request.Context())
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) GetReceptionistStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	stats, err := h.service.ReceptionistStats(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}
