package repository

import (
	"encoding/json"
	"log"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/google/uuid"
)

// PortfolioRepository maneja las posiciones del portafolio sobre el
// almacenamiento local, con la misma disciplina que las alertas:
// leer todo, mutar, escribir todo.
type PortfolioRepository struct {
	store storage.Store
}

// NewPortfolioRepository crea un nuevo repositorio de portafolio
func NewPortfolioRepository(store storage.Store) *PortfolioRepository {
	return &PortfolioRepository{store: store}
}

// GetHoldings devuelve todas las posiciones en orden de inserción.
// Datos corruptos o ausentes degradan a una colección vacía.
func (r *PortfolioRepository) GetHoldings() []models.PortfolioHolding {
	raw, err := r.store.Read(storage.PortfolioKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("Error al cargar el portafolio: %v", err)
		}
		return []models.PortfolioHolding{}
	}

	var holdings []models.PortfolioHolding
	if err := json.Unmarshal([]byte(raw), &holdings); err != nil {
		log.Printf("Error al decodificar el portafolio guardado: %v", err)
		return []models.PortfolioHolding{}
	}
	if holdings == nil {
		holdings = []models.PortfolioHolding{}
	}
	return holdings
}

func (r *PortfolioRepository) saveHoldings(holdings []models.PortfolioHolding) {
	data, err := json.Marshal(holdings)
	if err != nil {
		log.Printf("Error al serializar el portafolio: %v", err)
		return
	}
	if err := r.store.Write(storage.PortfolioKey, string(data)); err != nil {
		log.Printf("Error al guardar el portafolio: %v", err)
	}
}

// AddHolding registra una compra. Si ya existe una posición para la
// misma moneda, la compra se fusiona con precio promedio ponderado en
// lugar de crear una segunda fila; la fecha de la posición pasa a ser
// la de la última compra.
func (r *PortfolioRepository) AddHolding(req models.HoldingRequest) models.PortfolioHolding {
	holdings := r.GetHoldings()

	// Buscar si ya tenemos una posición para esta moneda
	for i := range holdings {
		if holdings[i].CoinID == req.CoinID {
			existing := &holdings[i]

			totalAmount := existing.Amount + req.Amount
			totalInvested := existing.TotalInvested + req.Amount*req.BuyPrice

			existing.Amount = totalAmount
			existing.TotalInvested = totalInvested
			existing.AvgBuyPrice = totalInvested / totalAmount
			existing.AddedAt = time.Now().Format(time.RFC3339)

			r.saveHoldings(holdings)
			return *existing
		}
	}

	// Primera compra de esta moneda: crear la posición
	holding := models.PortfolioHolding{
		ID:            uuid.NewString(),
		CoinID:        req.CoinID,
		CoinName:      req.CoinName,
		CoinSymbol:    req.CoinSymbol,
		Amount:        req.Amount,
		AvgBuyPrice:   req.BuyPrice,
		TotalInvested: req.Amount * req.BuyPrice,
		AddedAt:       time.Now().Format(time.RFC3339),
	}

	holdings = append(holdings, holding)
	r.saveHoldings(holdings)
	return holding
}

// RemoveHolding elimina la posición completa (no hay venta parcial);
// no-op si el id no existe
func (r *PortfolioRepository) RemoveHolding(id string) {
	holdings := r.GetHoldings()
	filtered := make([]models.PortfolioHolding, 0, len(holdings))
	for _, holding := range holdings {
		if holding.ID != id {
			filtered = append(filtered, holding)
		}
	}
	r.saveHoldings(filtered)
}

// HoldingDetails calcula la ganancia/pérdida de cada posición contra
// los precios actuales, en el mismo orden que las posiciones
func (r *PortfolioRepository) HoldingDetails(holdings []models.PortfolioHolding, currentPrices map[string]float64) []models.HoldingDetail {
	details := make([]models.HoldingDetail, 0, len(holdings))
	for _, holding := range holdings {
		details = append(details, models.NewHoldingDetail(holding, currentPrices[holding.CoinID]))
	}
	return details
}

// CalculateSummary calcula el resumen agregado del portafolio. Es una
// función pura: no lee ni escribe el almacenamiento. Una moneda sin
// precio en el mapa aporta valor actual cero pero su inversión sí
// cuenta en el total invertido.
func CalculateSummary(holdings []models.PortfolioHolding, currentPrices map[string]float64) models.PortfolioSummary {
	var totalInvested, currentValue float64

	for _, holding := range holdings {
		totalInvested += holding.TotalInvested
		currentValue += holding.Amount * currentPrices[holding.CoinID]
	}

	totalPnL := currentValue - totalInvested

	var totalPnLPercentage float64
	if totalInvested > 0 {
		totalPnLPercentage = (totalPnL / totalInvested) * 100
	}

	return models.PortfolioSummary{
		TotalInvested:      totalInvested,
		CurrentValue:       currentValue,
		TotalPnL:           totalPnL,
		TotalPnLPercentage: totalPnLPercentage,
	}
}
