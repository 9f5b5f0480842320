package billing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/model"
	billingservice "github.com/softcafe/clinic-admin-api/internal/service/billing"
)

type Handler struct {
	service *billingservice.Service
}

func NewHandler(service *billingservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	billings := r.Group("/billings")
	{
		billings.POST("", h.CreateBilling)
		billings.GET("/page/:page", h.ListBillings)
		billings.GET("/:id", h.GetBilling)
		billings.PUT("/:id", h.UpdateBilling)
		billings.DELETE("/:id", h.DeleteBilling)
	}
}

func (h *Handler) CreateBilling(c *gin.Context) {
	var req model.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	billing, err := h.service.CreateBilling(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(billing))
}

func (h *Handler) GetBilling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid billing ID"))
		return
	}

	billing, err := h.service.GetBilling(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(billing))
}

func (h *Handler) ListBillings(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid page number"))
		return
	}

	billings, totalPages, err := h.service.ListBillings(c.Request.Context(), page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"total_pages": totalPages,
		"billings":    billings,
	}))
}

func (h *Handler) UpdateBilling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid billing ID"))
		return
	}

	var req model.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	billing, err := h.service.UpdateBilling(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(billing))
}

func (h *Handler) DeleteBilling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid billing ID"))
		return
	}

	if err := h.service.DeleteBilling(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
