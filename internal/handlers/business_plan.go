package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/services"
	"emoped-plan-backend/internal/validation"
)

type BusinessPlanHandler struct {
	plans *services.PlanService
	log   *slog.Logger
}

func NewBusinessPlanHandler(plans *services.PlanService, log *slog.Logger) *BusinessPlanHandler {
	return &BusinessPlanHandler{
		plans: plans,
		log:   logger.WithComponent(log, "http"),
	}
}

// GetBusinessPlan godoc
// @Summary     Get the active business plan
// @Description Returns the content of the currently active business plan
// @Tags        business-plan
// @Produce     json
// @Success     200 {object} models.BusinessPlanResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/business-plan [get]
func (h *BusinessPlanHandler) GetBusinessPlan(c *gin.Context) {
	plan, err := h.plans.GetActivePlan(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.BusinessPlanResponse{
		Success: true,
		Data:    plan.Content,
	})
}

// CreateBusinessPlan godoc
// @Summary     Create a business plan
// @Description Stores a new plan and makes it the active one. Earlier plans are kept but deactivated.
// @Tags        business-plan
// @Accept      json
// @Produce     json
// @Param       plan body models.PlanContent true "Plan content"
// @Success     201 {object} models.CreatePlanResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/business-plan [post]
func (h *BusinessPlanHandler) CreateBusinessPlan(c *gin.Context) {
	content, ok := h.bindContent(c)
	if !ok {
		return
	}

	id, err := h.plans.CreatePlan(c.Request.Context(), *content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreatePlanResponse{Success: true, ID: id})
}

// UpdateBusinessPlan godoc
// @Summary     Replace a plan's content
// @Description Overwrites the content of an existing plan. The active plan does not change.
// @Tags        business-plan
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Plan ID"
// @Param       plan body models.PlanContent true "Plan content"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/business-plan/{id} [put]
func (h *BusinessPlanHandler) UpdateBusinessPlan(c *gin.Context) {
	content, ok := h.bindContent(c)
	if !ok {
		return
	}

	if err := h.plans.ReplacePlanContent(c.Request.Context(), c.Param("id"), *content); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *BusinessPlanHandler) bindContent(c *gin.Context) (*models.PlanContent, bool) {
	var content models.PlanContent
	if err := c.ShouldBindJSON(&content); err != nil {
		respondError(c, h.log, apperrors.NewInvalidInputError("invalid request body"))
		return nil, false
	}

	if err := validation.ValidatePlanContent(&content); err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return &content, true
}
