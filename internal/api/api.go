package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	commissionHandler "founders-server/internal/commission/handler"
	foundersHandler "founders-server/internal/founders/handler"
	"founders-server/internal/leaderboard"
	payoutHandler "founders-server/internal/payout/handler"
	referralHandler "founders-server/internal/referral/handler"
)

type API struct {
	router             *gin.RouterGroup
	foundersHandler    foundersHandler.Handler
	referralHandler    referralHandler.Handler
	commissionHandler  commissionHandler.Handler
	payoutHandler      payoutHandler.Handler
	leaderboardHandler *leaderboard.Handler
}

func New(
	router *gin.RouterGroup,
	foundersHandler foundersHandler.Handler,
	referralHandler referralHandler.Handler,
	commissionHandler commissionHandler.Handler,
	payoutHandler payoutHandler.Handler,
	leaderboardHandler *leaderboard.Handler,
) API {
	return API{
		router:             router,
		foundersHandler:    foundersHandler,
		referralHandler:    referralHandler,
		commissionHandler:  commissionHandler,
		payoutHandler:      payoutHandler,
		leaderboardHandler: leaderboardHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		foundersGroup := apiGroup.Group("/founders")
		foundersGroup.POST("", a.foundersHandler.HandleEnrollFounder)
		foundersGroup.GET("", a.foundersHandler.HandleListFounders)
		foundersGroup.POST("/:founder_id/deactivate", a.foundersHandler.HandleDeactivateFounder)
		foundersGroup.POST("/:founder_id/reactivate", a.foundersHandler.HandleReactivateFounder)
		foundersGroup.PUT("/:founder_id/payout-method", a.foundersHandler.HandleUpdatePayoutMethod)
		foundersGroup.GET("/:founder_id/dashboard", a.foundersHandler.HandleGetDashboard)

		foundersGroup.GET("/:founder_id/referrals", a.referralHandler.HandleGetFounderReferrals)
		foundersGroup.GET("/:founder_id/tier", a.referralHandler.HandleGetFounderTier)

		foundersGroup.GET("/:founder_id/balance", a.commissionHandler.HandleGetPendingBalance)
		foundersGroup.GET("/:founder_id/commissions", a.commissionHandler.HandleListFounderCommissions)

		foundersGroup.GET("/:founder_id/payouts", a.payoutHandler.HandleListFounderPayouts)
		foundersGroup.POST("/:founder_id/payouts", a.payoutHandler.HandleCreatePayout)
	}
	{
		referralsGroup := apiGroup.Group("/referrals")
		referralsGroup.POST("", a.referralHandler.HandleRegisterReferral)
		referralsGroup.POST("/:referral_id/activate", a.referralHandler.HandleActivateReferral)
	}
	{
		commissionsGroup := apiGroup.Group("/commissions")
		commissionsGroup.POST("", a.commissionHandler.HandleAccrueCommission)
		commissionsGroup.POST("/:commission_id/reverse", a.commissionHandler.HandleReverseCommission)
	}
	{
		payoutsGroup := apiGroup.Group("/payouts")
		payoutsGroup.GET("", a.payoutHandler.HandleListPayouts)
		payoutsGroup.GET("/:payout_id", a.payoutHandler.HandleGetPayout)
		payoutsGroup.POST("/:payout_id/complete", a.payoutHandler.HandleCompletePayout)
		payoutsGroup.POST("/:payout_id/cancel", a.payoutHandler.HandleCancelPayout)
		payoutsGroup.POST("/:payout_id/process", a.payoutHandler.HandleProcessPayout)
	}
	{
		leaderboardGroup := apiGroup.Group("/leaderboard")
		leaderboardGroup.GET("", a.leaderboardHandler.HandleGetLeaderboard)
		leaderboardGroup.GET("/founders/:founder_id", a.leaderboardHandler.HandleGetFounderStanding)
		leaderboardGroup.POST("/rebuild", a.leaderboardHandler.HandleRebuildLeaderboard)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
