package models

// PortfolioHolding representa la posición agregada del usuario en una
// criptomoneda. Hay como máximo una posición por coinId: una segunda
// compra se fusiona en la existente con precio promedio ponderado.
// Invariante: TotalInvested == Amount * AvgBuyPrice en todo momento.
type PortfolioHolding struct {
	ID            string  `json:"id"`
	CoinID        string  `json:"coinId"`
	CoinName      string  `json:"coinName"`
	CoinSymbol    string  `json:"coinSymbol"`
	Amount        float64 `json:"amount"`
	AvgBuyPrice   float64 `json:"avgBuyPrice"`
	TotalInvested float64 `json:"totalInvested"`
	AddedAt       string  `json:"addedAt"`
}

// HoldingRequest es el cuerpo de la petición para registrar una compra
type HoldingRequest struct {
	CoinID     string  `json:"coinId" binding:"required"`
	CoinName   string  `json:"coinName" binding:"required"`
	CoinSymbol string  `json:"coinSymbol" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	BuyPrice   float64 `json:"buyPrice" binding:"required,gt=0"`
}

// PortfolioSummary es el resumen agregado del portafolio contra los
// precios actuales. No se persiste, se calcula en cada consulta.
type PortfolioSummary struct {
	TotalInvested      float64 `json:"totalInvested"`
	CurrentValue       float64 `json:"currentValue"`
	TotalPnL           float64 `json:"totalPnL"`
	TotalPnLPercentage float64 `json:"totalPnLPercentage"`
}

// HoldingDetail representa una posición con su ganancia/pérdida contra
// el precio actual, más los campos formateados para el frontend
type HoldingDetail struct {
	PortfolioHolding
	CurrentPrice     float64 `json:"currentPrice"`
	CurrentValue     float64 `json:"currentValue"`
	PnL              float64 `json:"pnl"`
	PnLPercentage    float64 `json:"pnlPercentage"`
	ValueDisplay     string  `json:"value_display"`
	PnLDisplay       string  `json:"pnl_display"`
	AvgPriceDisplay  string  `json:"avg_price_display"`
	PnLPctDisplay    string  `json:"pnl_pct_display"`
}

// NewHoldingDetail calcula la ganancia/pérdida de una posición.
// Una moneda sin precio en el mapa contribuye con valor actual cero,
// no es un error ni excluye la posición del total invertido.
func NewHoldingDetail(holding PortfolioHolding, currentPrice float64) HoldingDetail {
	currentValue := holding.Amount * currentPrice
	pnl := currentValue - holding.TotalInvested

	var pnlPercentage float64
	if holding.TotalInvested > 0 {
		pnlPercentage = (pnl / holding.TotalInvested) * 100
	}

	return HoldingDetail{
		PortfolioHolding: holding,
		CurrentPrice:     currentPrice,
		CurrentValue:     currentValue,
		PnL:              pnl,
		PnLPercentage:    pnlPercentage,
		ValueDisplay:     FormatPrice(currentValue),
		PnLDisplay:       FormatPrice(pnl),
		AvgPriceDisplay:  FormatPrice(holding.AvgBuyPrice),
		PnLPctDisplay:    FormatPercentage(pnlPercentage),
	}
}
