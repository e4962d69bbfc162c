package repository

import (
	"encoding/json"
	"log"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/google/uuid"
)

// AlertRepository maneja las alertas de precio sobre el almacenamiento
// local. Cada operación lee la colección completa al empezar y la
// escribe entera al terminar si hubo mutación; no hay caché en memoria.
type AlertRepository struct {
	store storage.Store
}

// NewAlertRepository crea un nuevo repositorio de alertas
func NewAlertRepository(store storage.Store) *AlertRepository {
	return &AlertRepository{store: store}
}

// GetAlerts devuelve todas las alertas en orden de inserción. Si el
// almacenamiento está corrupto o ilegible devuelve una colección vacía:
// preferimos una UI disponible antes que propagar la corrupción.
func (r *AlertRepository) GetAlerts() []models.PriceAlert {
	raw, err := r.store.Read(storage.AlertsKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("Error al cargar las alertas: %v", err)
		}
		return []models.PriceAlert{}
	}

	var alerts []models.PriceAlert
	if err := json.Unmarshal([]byte(raw), &alerts); err != nil {
		log.Printf("Error al decodificar las alertas guardadas: %v", err)
		return []models.PriceAlert{}
	}
	if alerts == nil {
		alerts = []models.PriceAlert{}
	}
	return alerts
}

// saveAlerts persiste la colección completa. Un fallo de escritura se
// registra pero no se propaga: el resultado en memoria de la operación
// sigue siendo válido y la próxima escritura exitosa vuelve a dejar
// todo consistente.
func (r *AlertRepository) saveAlerts(alerts []models.PriceAlert) {
	data, err := json.Marshal(alerts)
	if err != nil {
		log.Printf("Error al serializar las alertas: %v", err)
		return
	}
	if err := r.store.Write(storage.AlertsKey, string(data)); err != nil {
		log.Printf("Error al guardar las alertas: %v", err)
	}
}

// CreateAlert crea una alerta nueva, la agrega al final de la colección
// y la persiste. El precio objetivo ya llega validado (> 0) desde el
// handler; acá no se re-valida.
func (r *AlertRepository) CreateAlert(req models.AlertRequest) models.PriceAlert {
	alert := models.PriceAlert{
		ID:          uuid.NewString(),
		CoinID:      req.CoinID,
		CoinName:    req.CoinName,
		CoinSymbol:  req.CoinSymbol,
		TargetPrice: req.TargetPrice,
		Condition:   req.Condition,
		IsActive:    true,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	alerts := r.GetAlerts()
	alerts = append(alerts, alert)
	r.saveAlerts(alerts)

	return alert
}

// ToggleAlert pausa o reanuda la alerta indicada. Si el id no existe no
// pasa nada: no es un error.
func (r *AlertRepository) ToggleAlert(id string) {
	alerts := r.GetAlerts()
	for i := range alerts {
		if alerts[i].ID == id {
			alerts[i].IsActive = !alerts[i].IsActive
			r.saveAlerts(alerts)
			return
		}
	}
}

// RemoveAlert elimina la alerta indicada; no-op si el id no existe
func (r *AlertRepository) RemoveAlert(id string) {
	alerts := r.GetAlerts()
	filtered := make([]models.PriceAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.ID != id {
			filtered = append(filtered, alert)
		}
	}
	r.saveAlerts(filtered)
}

// CheckAlerts evalúa todas las alertas pendientes contra los precios
// actuales y devuelve las que se dispararon en esta pasada.
//
// Una alerta dispara cuando el precio alcanza o cruza el objetivo:
// "above" con precio >= objetivo, "below" con precio <= objetivo. La
// igualdad exacta cuenta como disparo. Una vez disparada queda inactiva
// de forma permanente; re-armarla no está soportado, hay que crear una
// alerta nueva.
func (r *AlertRepository) CheckAlerts(currentPrices map[string]float64) []models.PriceAlert {
	alerts := r.GetAlerts()
	triggered := []models.PriceAlert{}

	for i := range alerts {
		alert := &alerts[i]
		if !alert.IsActive || alert.TriggeredAt != "" {
			continue
		}

		currentPrice, ok := currentPrices[alert.CoinID]
		if !ok {
			continue
		}

		shouldTrigger := (alert.Condition == models.AlertConditionAbove && currentPrice >= alert.TargetPrice) ||
			(alert.Condition == models.AlertConditionBelow && currentPrice <= alert.TargetPrice)

		if shouldTrigger {
			alert.TriggeredAt = time.Now().Format(time.RFC3339)
			alert.IsActive = false
			triggered = append(triggered, *alert)
		}
	}

	// Una sola escritura al final, y solo si algo disparó
	if len(triggered) > 0 {
		r.saveAlerts(alerts)
	}

	return triggered
}
