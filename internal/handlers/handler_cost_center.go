package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
	"github.com/lotearq/ledger_backoffice_app/internal/middleware"
)

// costCenterHandler handles HTTP requests for cost centers.
type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

// newCostCenterHandler creates a new costCenterHandler.
func newCostCenterHandler(costCenterService portssvc.CostCenterSvcFacade) *costCenterHandler {
	return &costCenterHandler{
		costCenterService: costCenterService,
	}
}

// createCostCenter godoc
// @Summary Register a cost center
// @Description Creates a new cost center with a unique code
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse "The created cost center"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Code already taken"
// @Router /cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var createReq dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateCostCenter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	costCenter, err := h.costCenterService.CreateCostCenter(c.Request.Context(), createReq, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating cost center", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate cost center code", slog.String("code", createReq.Code))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create cost center in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost center"})
		}
		return
	}

	logger.Info("Cost center created successfully", slog.String("cost_center_id", costCenter.CostCenterID))
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(costCenter))
}

// getCostCenter godoc
// @Summary Get a cost center
// @Description Retrieves a single cost center by its ID
// @Tags cost-centers
// @Produce json
// @Param costCenterID path string true "Cost center ID"
// @Success 200 {object} dto.CostCenterResponse "The cost center"
// @Failure 404 {object} map[string]string "Cost center not found"
// @Router /cost-centers/{costCenterID} [get]
func (h *costCenterHandler) getCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCenterID := c.Param("costCenterID")

	costCenter, err := h.costCenterService.GetCostCenterByID(c.Request.Context(), costCenterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Cost center not found", slog.String("cost_center_id", costCenterID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost center not found"})
			return
		}
		logger.Error("Failed to get cost center from service", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cost center"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCenterResponse(costCenter))
}

// listCostCenters godoc
// @Summary List cost centers
// @Description Retrieves cost centers ordered by code
// @Tags cost-centers
// @Produce json
// @Param activeOnly query bool false "Exclude deactivated cost centers"
// @Success 200 {array} dto.CostCenterResponse "Cost centers"
// @Failure 500 {object} map[string]string "Failed to list cost centers"
// @Router /cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	onlyActive, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	costCenters, err := h.costCenterService.ListCostCenters(c.Request.Context(), onlyActive)
	if err != nil {
		logger.Error("Failed to list cost centers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost centers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCenterResponses(costCenters))
}

// RegisterCostCenterRoutes registers cost center specific routes.
func RegisterCostCenterRoutes(group *gin.RouterGroup, costCenterService portssvc.CostCenterSvcFacade) {
	costCenterHandler := newCostCenterHandler(costCenterService)

	costCenters := group.Group("/cost-centers")
	{
		costCenters.POST("", costCenterHandler.createCostCenter)
		costCenters.GET("", costCenterHandler.listCostCenters)
		costCenters.GET("/:costCenterID", costCenterHandler.getCostCenter)
	}
}
