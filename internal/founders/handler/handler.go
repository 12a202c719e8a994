package handler

import (
	"founders-server/internal/founders/processor"
	"founders-server/internal/observability"
	"founders-server/internal/store"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.FounderProcessor
	logger    *observability.Logger
}

func New(processor processor.FounderProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// EnrollFounderRequest represents the HTTP request for enrolling a founder
type EnrollFounderRequest struct {
	Email             string  `json:"email" binding:"required,email"`
	Name              string  `json:"name" binding:"required"`
	PayoutMethod      string  `json:"payout_method" binding:"required"`
	PayoutDestination *string `json:"payout_destination,omitempty"`
}

// HandleEnrollFounder handles POST /api/founders
func (h *Handler) HandleEnrollFounder(c *gin.Context) {
	ctx := c.Request.Context()

	var req EnrollFounderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	founder, err := h.processor.EnrollFounder(ctx, processor.EnrollFounderRequest{
		Email:             req.Email,
		Name:              req.Name,
		PayoutMethod:      req.PayoutMethod,
		PayoutDestination: req.PayoutDestination,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to enroll founder", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, founder)
}

// HandleDeactivateFounder handles POST /api/founders/:founder_id/deactivate
func (h *Handler) HandleDeactivateFounder(c *gin.Context) {
	h.setStatus(c, store.FounderStatusInactive)
}

// HandleReactivateFounder handles POST /api/founders/:founder_id/reactivate
func (h *Handler) HandleReactivateFounder(c *gin.Context) {
	h.setStatus(c, store.FounderStatusActive)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	founder, err := h.processor.SetFounderStatus(ctx, founderID, status)
	if err != nil {
		h.logger.Error(ctx, "failed to update founder status", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, founder)
}

// UpdatePayoutMethodRequest represents the HTTP request for updating a payout method
type UpdatePayoutMethodRequest struct {
	PayoutMethod      string  `json:"payout_method" binding:"required"`
	PayoutDestination *string `json:"payout_destination,omitempty"`
	StripeAccountID   *string `json:"stripe_account_id,omitempty"`
}

// HandleUpdatePayoutMethod handles PUT /api/founders/:founder_id/payout-method
func (h *Handler) HandleUpdatePayoutMethod(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	var req UpdatePayoutMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	founder, err := h.processor.UpdatePayoutMethod(ctx, founderID, processor.UpdatePayoutMethodRequest{
		PayoutMethod:      req.PayoutMethod,
		PayoutDestination: req.PayoutDestination,
		StripeAccountID:   req.StripeAccountID,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to update payout method", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, founder)
}

// HandleGetDashboard handles GET /api/founders/:founder_id/dashboard
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	dashboard, err := h.processor.GetDashboard(ctx, founderID)
	if err != nil {
		h.logger.Error(ctx, "failed to get dashboard", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// HandleListFounders handles GET /api/founders
func (h *Handler) HandleListFounders(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.processor.ListFounders(ctx, processor.ListFoundersRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list founders", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch err {
	case processor.ErrFounderNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "founder not found"})
	case processor.ErrEmailRequired:
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
	case processor.ErrNameRequired:
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
	case processor.ErrInvalidPayoutMethod:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout method"})
	case processor.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
