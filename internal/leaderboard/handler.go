package leaderboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"founders-server/internal/observability"
	"founders-server/internal/store"
)

// Handler serves leaderboard reads over HTTP.
type Handler struct {
	service *Service
	store   *store.Store
	logger  *observability.Logger
}

func NewHandler(service *Service, st *store.Store, logger *observability.Logger) *Handler {
	return &Handler{
		service: service,
		store:   st,
		logger:  logger,
	}
}

// HandleGetLeaderboard returns the top founders by active referrals.
// GET /api/leaderboard?limit=10
func (h *Handler) HandleGetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.service.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard is not enabled"})
		return
	}

	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	entries, err := h.service.Top(ctx, limit)
	if err != nil {
		h.logger.Error(ctx, "failed to load leaderboard", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	total, err := h.service.Count(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to count leaderboard members", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}

// HandleGetFounderStanding returns one founder's rank and score.
// GET /api/leaderboard/founders/:founder_id
func (h *Handler) HandleGetFounderStanding(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.service.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard is not enabled"})
		return
	}

	founderID, err := uuid.Parse(c.Param("founder_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid founder id"})
		return
	}

	entry, err := h.service.Standing(ctx, founderID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.JSON(http.StatusNotFound, gin.H{"error": "founder is not on the leaderboard"})
			return
		}
		h.logger.Error(ctx, "failed to get founder standing", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// HandleRebuildLeaderboard repopulates the leaderboard from the database.
// POST /api/leaderboard/rebuild
func (h *Handler) HandleRebuildLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.service.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "leaderboard is not enabled"})
		return
	}

	rows, err := h.store.ActiveReferralCountsByFounder(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to load referral counts for rebuild", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rebuild leaderboard"})
		return
	}

	counts := make([]FounderActiveCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, FounderActiveCount{FounderID: row.FounderID, ActiveCount: row.ActiveCount})
	}

	if err := h.service.Rebuild(ctx, counts); err != nil {
		h.logger.Error(ctx, "failed to rebuild leaderboard", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rebuild leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rebuilt": len(counts)})
}
