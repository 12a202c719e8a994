package handler

import (
	"founders-server/internal/observability"
	"founders-server/internal/referral/processor"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterReferralRequest represents the HTTP request for registering a referral
type RegisterReferralRequest struct {
	ReferralCode  string `json:"referral_code" binding:"required"`
	ReferredEmail string `json:"referred_email" binding:"required,email"`
	ReferredType  string `json:"referred_type" binding:"required"`
}

// HandleRegisterReferral handles POST /api/referrals
func (h *Handler) HandleRegisterReferral(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	referral, err := h.processor.RegisterReferral(ctx, processor.RegisterReferralRequest{
		ReferralCode:  req.ReferralCode,
		ReferredEmail: req.ReferredEmail,
		ReferredType:  req.ReferredType,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to register referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, referral)
}

// HandleActivateReferral handles POST /api/referrals/:referral_id/activate
func (h *Handler) HandleActivateReferral(c *gin.Context) {
	ctx := c.Request.Context()

	referralID, err := uuid.Parse(c.Param("referral_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse referral ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referral id"})
		return
	}

	referral, err := h.processor.ActivateReferral(ctx, referralID)
	if err != nil {
		h.logger.Error(ctx, "failed to activate referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, referral)
}

// HandleGetFounderReferrals handles GET /api/founders/:founder_id/referrals
func (h *Handler) HandleGetFounderReferrals(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	response, err := h.processor.GetFounderReferrals(ctx, founderID, processor.GetFounderReferralsRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to get founder referrals", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleGetFounderTier handles GET /api/founders/:founder_id/tier
func (h *Handler) HandleGetFounderTier(c *gin.Context) {
	ctx := c.Request.Context()

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse founder ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	response, err := h.processor.GetFounderTier(ctx, founderID)
	if err != nil {
		h.logger.Error(ctx, "failed to get founder tier", err)
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
	case processor.ErrReferralNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
	case processor.ErrUnknownReferralCode:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown referral code"})
	case processor.ErrFounderInactive:
		c.JSON(http.StatusConflict, gin.H{"error": "founder is not active"})
	case processor.ErrReferralAlreadyActive:
		c.JSON(http.StatusConflict, gin.H{"error": "referral is already active"})
	case processor.ErrAlreadyReferred:
		c.JSON(http.StatusConflict, gin.H{"error": "email has already been referred"})
	case processor.ErrInvalidReferredType:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referred type"})
	case processor.ErrEmailRequired:
		c.JSON(http.StatusBadRequest, gin.H{"error": "referred email is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
