package handler

import (
	"founders-server/internal/commission/processor"
	"founders-server/internal/observability"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor processor.CommissionProcessor
	logger    *observability.Logger
}

func New(processor processor.CommissionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// AccrueCommissionRequest represents the HTTP request for accruing a commission
type AccrueCommissionRequest struct {
	FounderID      string `json:"founder_id" binding:"required"`
	CommissionType string `json:"commission_type" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
}

// HandleAccrueCommission handles POST /api/commissions
func (h *Handler) HandleAccrueCommission(c *gin.Context) {
	ctx := c.Request.Context()

	var req AccrueCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	founderID, err := uuid.Parse(req.FounderID)
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.logger.Error(ctx, "failed to parse amount", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	commission, err := h.processor.AccrueCommission(ctx, processor.AccrueCommissionRequest{
		FounderID:      founderID,
		CommissionType: req.CommissionType,
		Amount:         amount,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to accrue commission", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commission)
}

// HandleReverseCommission handles POST /api/commissions/:commission_id/reverse
func (h *Handler) HandleReverseCommission(c *gin.Context) {
	ctx := c.Request.Context()

	commissionID, err := uuid.Parse(c.Param("commission_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse commission ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commission id"})
		return
	}

	commission, err := h.processor.ReverseCommission(ctx, commissionID)
	if err != nil {
		h.logger.Error(ctx, "failed to reverse commission", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, commission)
}

// HandleGetPendingBalance handles GET /api/founders/:founder_id/balance
func (h *Handler) HandleGetPendingBalance(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	response, err := h.processor.GetPendingBalance(ctx, founderID)
	if err != nil {
		h.logger.Error(ctx, "failed to get pending balance", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleListFounderCommissions handles GET /api/founders/:founder_id/commissions
func (h *Handler) HandleListFounderCommissions(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.processor.ListFounderCommissions(ctx, founderID, processor.ListFounderCommissionsRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list commissions", err)
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
	case processor.ErrCommissionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "commission not found"})
	case processor.ErrFounderInactive:
		c.JSON(http.StatusConflict, gin.H{"error": "founder is not active"})
	case processor.ErrCommissionNotReversible:
		c.JSON(http.StatusConflict, gin.H{"error": "commission cannot be reversed"})
	case processor.ErrInvalidAmount:
		c.JSON(http.StatusBadRequest, gin.H{"error": "commission amount must be positive"})
	case processor.ErrInvalidCommissionType:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commission type"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
