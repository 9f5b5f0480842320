package labtest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/model"
	labtestservice "github.com/softcafe/clinic-admin-api/internal/service/labtest"
)

type Handler struct {
	service *labtestservice.Service
}

func NewHandler(service *labtestservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tests := r.Group("/test")
	{
		tests.POST("", h.CreateLabTest)
		tests.GET("", h.GetLabTestsByDate)
		tests.GET("/record/:id", h.GetRecordLabTests)
		tests.PUT("/:id", h.UpdateLabTest)
		tests.DELETE("/:id", h.DeleteLabTest)
	}
}

func (h *Handler) CreateLabTest(c *gin.Context) {
	var req model.LabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	test, err := h.service.CreateLabTest(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(test))
}

func (h *Handler) GetLabTestsByDate(c *gin.Context) {
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

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid page number"))
		return
	}

	result, err := h.service.LabTestsByDateRange(c.Request.Context(), start, end, page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetRecordLabTests(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	tests, err := h.service.LabTestsByRecord(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tests))
}

func (h *Handler) UpdateLabTest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid lab test ID"))
		return
	}

	var req model.LabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	test, err := h.service.UpdateLabTest(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(test))
}

func (h *Handler) DeleteLabTest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid lab test ID"))
		return
	}

	if err := h.service.DeleteLabTest(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
