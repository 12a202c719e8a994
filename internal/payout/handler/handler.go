package handler

import (
	"errors"
	"founders-server/internal/observability"
	"founders-server/internal/payout/processor"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PayoutProcessor
	logger    *observability.Logger
}

func New(processor processor.PayoutProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreatePayoutRequest represents the HTTP request for opening a payout
type CreatePayoutRequest struct {
	PayoutPeriod string `json:"payout_period" binding:"required"`
}

// HandleCreatePayout handles POST /api/founders/:founder_id/payouts
func (h *Handler) HandleCreatePayout(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	var req CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	payout, err := h.processor.CreatePayout(ctx, founderID, processor.CreatePayoutRequest{
		PayoutPeriod: req.PayoutPeriod,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create payout", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payout)
}

// CompletePayoutRequest represents the HTTP request for settling a payout
type CompletePayoutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// HandleCompletePayout handles POST /api/payouts/:payout_id/complete
func (h *Handler) HandleCompletePayout(c *gin.Context) {
	ctx := c.Request.Context()

	payoutID, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse payout ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout id"})
		return
	}

	var req CompletePayoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error(ctx, "failed to bind request", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	payout, err := h.processor.CompletePayout(ctx, payoutID, req.Notes)
	if err != nil {
		h.logger.Error(ctx, "failed to complete payout", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}

// HandleCancelPayout handles POST /api/payouts/:payout_id/cancel
func (h *Handler) HandleCancelPayout(c *gin.Context) {
	ctx := c.Request.Context()

	payoutID, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse payout ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout id"})
		return
	}

	payout, err := h.processor.CancelPayout(ctx, payoutID)
	if err != nil {
		h.logger.Error(ctx, "failed to cancel payout", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}

// HandleProcessPayout handles POST /api/payouts/:payout_id/process
func (h *Handler) HandleProcessPayout(c *gin.Context) {
	ctx := c.Request.Context()

	payoutID, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse payout ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout id"})
		return
	}

	payout, err := h.processor.ProcessViaStripe(ctx, payoutID)
	if err != nil {
		h.logger.Error(ctx, "failed to process payout", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}

// HandleGetPayout handles GET /api/payouts/:payout_id
func (h *Handler) HandleGetPayout(c *gin.Context) {
	ctx := c.Request.Context()

	payoutID, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse payout ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout id"})
		return
	}

	payout, err := h.processor.GetPayout(ctx, payoutID)
	if err != nil {
		h.logger.Error(ctx, "failed to get payout", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}

// HandleListFounderPayouts handles GET /api/founders/:founder_id/payouts
func (h *Handler) HandleListFounderPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.processor.ListFounderPayouts(ctx, founderID, processor.ListFounderPayoutsRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list founder payouts", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleListPayouts handles GET /api/payouts
func (h *Handler) HandleListPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	var status *string
	if statusParam := c.Query("status"); statusParam != "" {
		status = &statusParam
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.processor.ListPayouts(ctx, processor.ListPayoutsRequest{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list payouts", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch {
	case err == processor.ErrFounderNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "founder not found"})
	case err == processor.ErrPayoutNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "payout not found"})
	case err == processor.ErrFounderInactive:
		c.JSON(http.StatusConflict, gin.H{"error": "founder is not active"})
	case err == processor.ErrBelowMinimum:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "pending balance is below the payout minimum"})
	case err == processor.ErrPayoutAlreadyInFlight:
		c.JSON(http.StatusConflict, gin.H{"error": "founder already has an open payout"})
	case err == processor.ErrPayoutNotOpen:
		c.JSON(http.StatusConflict, gin.H{"error": "payout is not open"})
	case err == processor.ErrInvalidPayoutPeriod:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout period"})
	case err == processor.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout status"})
	case err == processor.ErrRailNotEnabled:
		c.JSON(http.StatusConflict, gin.H{"error": "stripe payout rail is not enabled"})
	case err == processor.ErrRailNotConfigured:
		c.JSON(http.StatusConflict, gin.H{"error": "founder has no usable stripe account"})
	case err == processor.ErrNotRailPayout:
		c.JSON(http.StatusConflict, gin.H{"error": "payout method is not stripe connect"})
	case errors.Is(err, processor.ErrExternalRailFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "external payout rail failure"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
