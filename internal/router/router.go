package router

import (
	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/handler"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, ldg *ledger.Ledger, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "chainimpact-escrow",
		})
	})

	v1 := r.Group("/api/v1")
	{
		campaignHandler := handler.NewCampaignHandler(db, ldg, cfg.Campaign)
		milestoneHandler := handler.NewMilestoneHandler(db, ldg, cfg.Campaign)
		donationHandler := handler.NewDonationHandler(db, ldg)
		eventHandler := handler.NewEventHandler(db)

		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.GET("/:id/stats", campaignHandler.GetCampaignStats)

			campaigns.POST("/:id/milestones", milestoneHandler.AddMilestone)
			campaigns.POST("/:id/milestones/:index/verify", milestoneHandler.VerifyMilestone)
			campaigns.POST("/:id/milestones/:index/release", milestoneHandler.ReleaseFunds)

			campaigns.POST("/:id/donations", donationHandler.Donate)
			campaigns.GET("/:id/contributions", donationHandler.GetContributions)
			campaigns.POST("/:id/refunds", donationHandler.Refund)

			campaigns.GET("/:id/events", eventHandler.GetCampaignEvents)
		}

		accountHandler := handler.NewAccountHandler(db, ldg)
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.ProvisionAccount)
			accounts.GET("/:address", accountHandler.GetAccount)
		}
	}

	return r
}

// CORS middleware
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
