package models

// Coin representa el snapshot de mercado de una criptomoneda meme
// tal como lo devuelve el endpoint /coins/markets de CoinGecko
type Coin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	Image                    string  `json:"image"`
	LastUpdated              string  `json:"last_updated"`
}

// CoinDisplay agrega los campos formateados para mostrar en el frontend
type CoinDisplay struct {
	Coin
	PriceDisplay     string `json:"price_display"`
	MarketCapDisplay string `json:"market_cap_display"`
	Change24hDisplay string `json:"change_24h_display"`
}

// NewCoinDisplay crea la versión formateada de un snapshot de moneda
func NewCoinDisplay(coin Coin) CoinDisplay {
	return CoinDisplay{
		Coin:             coin,
		PriceDisplay:     FormatPrice(coin.CurrentPrice),
		MarketCapDisplay: FormatMarketCap(coin.MarketCap),
		Change24hDisplay: FormatPercentage(coin.PriceChangePercentage24h),
	}
}

// PriceMap construye el mapa coinId -> precio actual que consumen
// el chequeo de alertas y el cálculo del resumen del portafolio
func PriceMap(coins []Coin) map[string]float64 {
	prices := make(map[string]float64, len(coins))
	for _, coin := range coins {
		prices[coin.ID] = coin.CurrentPrice
	}
	return prices
}
