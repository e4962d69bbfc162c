package routes

import (
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registra las rutas de la API. No hay autenticación:
// la aplicación es de un solo usuario y los datos viven en su máquina.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/coins", middleware.GetCoins)
	router.POST("/refresh", middleware.RefreshCoins)

	router.GET("/alerts", middleware.GetAlerts)
	router.POST("/alerts", middleware.CreateAlert)
	router.PUT("/alerts/:id/toggle", middleware.ToggleAlert)
	router.DELETE("/alerts/:id", middleware.DeleteAlert)

	router.GET("/portfolio", middleware.GetPortfolio)
	router.POST("/holdings", middleware.CreateHolding)
	router.DELETE("/holdings/:id", middleware.DeleteHolding)
}
