package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
)

type UnitHandler struct {
	unitService service.IUnitService
	log         *logger.Logger
}

func NewUnitHandler(unitService service.IUnitService, log *logger.Logger) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
		log:         log.WithComponent("unit_handler"),
	}
}

func (h *UnitHandler) RegisterRoutes(router *gin.RouterGroup) {
	units := router.Group("/unitsofmeasurement")
	{
		units.GET("", h.ListUnits)
		units.POST("", h.CreateUnit)
		units.GET("/:id", h.GetUnit)
		units.DELETE("/:id", h.DeleteUnit)
	}
}

func (h *UnitHandler) ListUnits(c *gin.Context) {
	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, ok := parseID(c, "id", "unit of measurement")
	if !ok {
		return
	}
	unit, err := h.unitService.GetUnit(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req types.CreateUnitOfMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	unit, err := h.unitService.CreateUnit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Location", "/api/unitsofmeasurement/"+unit.ID.String())
	c.JSON(http.StatusCreated, unit)
}

func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	id, ok := parseID(c, "id", "unit of measurement")
	if !ok {
		return
	}
	if err := h.unitService.DeleteUnit(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
