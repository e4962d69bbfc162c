package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var priceUpdater *services.PriceUpdater

// SetPriceUpdater hace disponible el actualizador de precios para los handlers
func SetPriceUpdater(updater *services.PriceUpdater) {
	priceUpdater = updater
}

// GetCoins devuelve el último snapshot de las monedas meme. Si todavía
// no hay ninguno (arranque en frío) intenta un fetch sincrónico.
func GetCoins(c *gin.Context) {
	coins, lastUpdate := priceUpdater.GetCoins()

	if len(coins) == 0 {
		if _, err := priceUpdater.Refresh(); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron obtener los datos de las monedas"})
			return
		}
		coins, lastUpdate = priceUpdater.GetCoins()
	}

	display := make([]models.CoinDisplay, 0, len(coins))
	for _, coin := range coins {
		display = append(display, models.NewCoinDisplay(coin))
	}

	c.JSON(http.StatusOK, gin.H{
		"coins":        display,
		"last_updated": lastUpdate,
	})
}

// RefreshCoins fuerza una actualización de precios (el botón de refresh
// de la UI) y devuelve las alertas que se dispararon con el snapshot nuevo
func RefreshCoins(c *gin.Context) {
	triggered, err := priceUpdater.Refresh()
	if err != nil {
		// Fallo transitorio: no se mutó nada, el cliente puede reintentar
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron obtener los datos de las monedas"})
		return
	}

	coins, lastUpdate := priceUpdater.GetCoins()
	c.JSON(http.StatusOK, gin.H{
		"coins":            coins,
		"last_updated":     lastUpdate,
		"triggered_alerts": triggered,
	})
}
