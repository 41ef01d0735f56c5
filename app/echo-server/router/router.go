package router

import (
	"sparkAgent/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAgentRoutes(api *echo.Group, handler *rest.AgentHandler) {
	agent := api.Group("/agent")

	agent.POST("/command", handler.ProcessCommand)
	agent.POST("/navigate", handler.Navigate)
	agent.POST("/extract", handler.Extract)
	agent.POST("/summarize", handler.Summarize)
	agent.POST("/action", handler.PerformAction)
	agent.GET("/suggestions", handler.Suggestions)
}

func SetupComparisonRoutes(api *echo.Group, handler *rest.ComparisonHandler) {
	comparison := api.Group("/comparison")

	comparison.POST("/compare", handler.Compare)
	comparison.GET("/compare/criteria", handler.Criteria)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	recommendations := api.Group("/recommendations")

	recommendations.POST("/recommend", handler.Recommend)
	recommendations.POST("/recommend/quick", handler.QuickRecommend)
	recommendations.GET("/recommend/priorities", handler.Priorities)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupStoreRoutes(api *echo.Group, handler *rest.StoreHandler) {
	stores := api.Group("/stores")

	stores.GET("/best-deal", handler.GetBestDeal)
	stores.GET("/:id", handler.GetStoreByID)
}
