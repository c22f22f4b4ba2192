package routes

import (
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)

	// Monedas públicas
	router.GET("/coins", middleware.GetCoins)
	router.GET("/coins/:code/price", middleware.GetCoinPrice)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/profile", middleware.UpdateProfile)
		protected.DELETE("/profile", middleware.DeleteProfile)

		protected.POST("/transactions", middleware.CreateTransaction)
		protected.GET("/transactions", middleware.GetProfileTransactions)
		protected.GET("/transactions/:id", middleware.GetTransactionDetails)
		protected.PUT("/transactions/:id", middleware.UpdateTransaction)
		protected.DELETE("/transactions/:id", middleware.DeleteTransaction)
		protected.GET("/recent-transactions", middleware.GetRecentTransactions)
		protected.GET("/holdings", middleware.GetHoldings)

		protected.POST("/importers", middleware.UploadImporter)
		protected.GET("/importers", middleware.GetProfileImporters)
		protected.GET("/importers/:id", middleware.GetImporter)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/profiles", middleware.GetProfiles)
		admin.GET("/profiles/:id", middleware.GetProfile)
		admin.DELETE("/profiles/:id", middleware.DeleteProfileByAdmin)
		admin.GET("/profiles/:id/transactions", middleware.GetAdminTransactions)
		admin.POST("/profiles/:id/transactions", middleware.CreateTransactionByAdmin)

		admin.PUT("/transactions/:id", middleware.UpdateTransactionByAdmin)
		admin.DELETE("/transactions/:id", middleware.DeleteTransactionByAdmin)

		admin.GET("/telegram-accounts", middleware.GetTelegramAccounts)
		admin.POST("/telegram-accounts", middleware.CreateTelegramAccount)
		admin.GET("/channels", middleware.GetChannels)
		admin.POST("/channels", middleware.CreateChannel)

		admin.GET("/coins", middleware.GetAllCoins)
		admin.POST("/coins", middleware.CreateCoin)
		admin.PUT("/coins/:id", middleware.UpdateCoin)
		admin.DELETE("/coins/:id", middleware.DeleteCoin)
		admin.POST("/coins/:id/icon", middleware.UploadCoinIcon)

		admin.GET("/exchanges", middleware.GetExchanges)
		admin.POST("/exchanges", middleware.CreateExchange)
		admin.PUT("/exchanges/:id", middleware.UpdateExchange)
		admin.DELETE("/exchanges/:id", middleware.DeleteExchange)
		admin.POST("/exchanges/:id/refresh-prices", middleware.RefreshExchangePrices)

		admin.GET("/importers", middleware.GetAllImporters)
		admin.DELETE("/importers/:id", middleware.DeleteImporterByAdmin)
		admin.GET("/cache-status", middleware.GetCacheStatus)
	}
}
