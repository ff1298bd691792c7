package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/trollcity/economy/internal/server/http/handlers"
	"github.com/trollcity/economy/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.EconomyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	transferHandler := handlers.NewTransferHandler(facade)
	payoutHandler := handlers.NewPayoutHandler(facade)
	creditHandler := handlers.NewCreditHandler(facade)

	api := engine.Group("/api")

	economy := api.Group("/economy")
	economy.GET("/tiers", payoutHandler.Tiers)
	economy.GET("/quote", payoutHandler.Quote)

	user := economy.Group("")
	user.Use(middleware.RequireUser())
	user.GET("/balance", transferHandler.Balance)
	user.POST("/tips", transferHandler.SendTip)
	user.POST("/entry-passes", transferHandler.PayEntryPass)
	user.GET("/entry-passes/:broadcaster_id", transferHandler.EntryPassStatus)
	user.POST("/payouts", payoutHandler.Create)
	user.GET("/payouts", payoutHandler.History)
	user.GET("/credit-score", creditHandler.Score)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/payouts/:id/approve", payoutHandler.Approve)

	return engine
}
