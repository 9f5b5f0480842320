package record

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/handler"
	"github.com/softcafe/clinic-admin-api/internal/model"
	recordservice "github.com/softcafe/clinic-admin-api/internal/service/record"
)

type Handler struct {
	service *recordservice.Service
}

func NewHandler(service *recordservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/record")
	{
		records.POST("", h.CreateRecord)
		records.GET("/patient/:id", h.GetPatientRecords)
		records.GET("/doctor/:id", h.GetDoctorRecords)
		records.GET("/date", h.GetRecordsByDate)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) GetPatientRecords(c *gin.Context) {
	id, page, ok := h.idAndPage(c)
	if !ok {
		return
	}

	result, err := h.service.RecordsByPatient(c.Request.Context(), id, page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetDoctorRecords(c *gin.Context) {
	id, page, ok := h.idAndPage(c)
	if !ok {
		return
	}

	result, err := h.service.RecordsByDoctor(c.Request.Context(), id, page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) GetRecordsByDate(c *gin.Context) {
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

	result, err := h.service.RecordsByDateRange(c.Request.Context(), start, end, page)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	var req model.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.UpdateRecord(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	if err := h.service.DeleteRecord(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) idAndPage(c *gin.Context) (uuid.UUID, int, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid ID"))
		return uuid.Nil, 0, false
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid page number"))
		return uuid.Nil, 0, false
	}
	return id, page, true
}
