package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/repository"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/gin-gonic/gin"
)

var portfolioRepo *repository.PortfolioRepository

// InitPortfolio inicializa el repositorio de portafolio sobre el
// almacenamiento dado
func InitPortfolio(store storage.Store) {
	portfolioRepo = repository.NewPortfolioRepository(store)
}

// GetPortfolio devuelve las posiciones con su ganancia/pérdida contra
// el último snapshot de precios, más el resumen agregado
func GetPortfolio(c *gin.Context) {
	holdings := portfolioRepo.GetHoldings()
	prices := priceUpdater.CurrentPrices()

	c.JSON(http.StatusOK, gin.H{
		"holdings": portfolioRepo.HoldingDetails(holdings, prices),
		"summary":  repository.CalculateSummary(holdings, prices),
	})
}

// CreateHolding registra una compra. Si ya existe una posición para la
// moneda, la compra se fusiona con precio promedio ponderado.
func CreateHolding(c *gin.Context) {
	var req models.HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holding := portfolioRepo.AddHolding(req)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Compra registrada exitosamente",
		"holding": holding,
	})
}

// DeleteHolding elimina una posición completa del portafolio
func DeleteHolding(c *gin.Context) {
	portfolioRepo.RemoveHolding(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Posición eliminada exitosamente"})
}
