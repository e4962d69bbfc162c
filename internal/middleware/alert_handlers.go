package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/repository"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/gin-gonic/gin"
)

var alertRepo *repository.AlertRepository

// InitAlerts inicializa el repositorio de alertas sobre el almacenamiento
// dado y lo devuelve para quien necesite compartirlo (el actualizador de
// precios usa el mismo repositorio para evaluar las alertas)
func InitAlerts(store storage.Store) *repository.AlertRepository {
	alertRepo = repository.NewAlertRepository(store)
	return alertRepo
}

// GetAlerts devuelve todas las alertas del usuario
func GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": alertRepo.GetAlerts()})
}

// CreateAlert crea una alerta de precio nueva. La validación del cuerpo
// (precio objetivo > 0, condición above/below) ocurre acá con el binding.
func CreateAlert(c *gin.Context) {
	var req models.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert := alertRepo.CreateAlert(req)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Alerta creada exitosamente",
		"alert":   alert,
	})
}

// ToggleAlert pausa o reanuda una alerta
func ToggleAlert(c *gin.Context) {
	alertRepo.ToggleAlert(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Alerta actualizada"})
}

// DeleteAlert elimina una alerta
func DeleteAlert(c *gin.Context) {
	alertRepo.RemoveAlert(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Alerta eliminada exitosamente"})
}
