package staff

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/model"
	staffservice "github.com/softcafe/clinic-admin-api/internal/service/staff"
)

type Handler struct {
	service *staffservice.Service
}

func NewHandler(service *staffservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	staff := r.Group("/staff")
	{
		staff.GET("/get", h.SearchStaff)
		staff.GET("/page/:page", h.ListStaff)
		staff.GET("/doctors/active", h.GetOnDutyDoctors)
		staff.POST("", h.CreateStaff)
		staff.GET("/:id", h.GetStaff)
		staff.PUT("/:id", h.UpdateStaff)
		staff.DELETE("/:id", h.DeleteStaff)
	}
}

// SearchStaff decodes the raw search/filter/sort tokens once, here at the
// boundary, and hands the service closed variants only.
func (h *Handler) SearchStaff(c *gin.Context) {
	identifier, ok := staffservice.ParseIdentifier(c.Query("identifier"))
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid search identifier"))
		return
	}

	var filter *model.StaffFilter
	if token := c.Query("filter"); token != "" {
		filter, ok = model.ParseStaffFilter(token)
		if !ok {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid filter criteria"))
			return
		}
	}

	sort, ok := model.ParseStaffSort(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid sort criteria"))
		return
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid page number"))
		return
	}

	result, err := h.service.Search(c.Request.Context(), staffservice.SearchQuery{
		Identifier: identifier,
		Value:      c.Query("value"),
		Filter:     filter,
		Sort:       sort,
		Page:       page,
	})
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) ListStaff(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid page number"))
		return
	}

	result, err := h.service.ListStaff(c.Request.Context(), page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetOnDutyDoctors(c *gin.Context) {
	doctors, err := h.service.OnDutyDoctors(c.Request.Context())
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	staff, err := h.service.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(staff))
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	staff, err := h.service.GetStaff(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(staff))
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	var req model.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	staff, err := h.service.UpdateStaff(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(staff))
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
