package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
)

// Lista fija de monedas meme que sigue la aplicación
var MemeCoinIDs = []string{
	"dogecoin",
	"shiba-inu",
	"pepe",
	"floki",
	"bonk",
	"dogwifhat",
	"book-of-meme",
	"cat-in-a-dogs-world",
	"popcat",
	"mog-coin",
}

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// marketsRow es la fila cruda que devuelve /coins/markets. El cambio de
// 24 horas puede venir null, por eso es puntero: la regla de defaulteo
// (null -> 0) se aplica acá, una sola vez, y no en los consumidores.
type marketsRow struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             float64  `json:"current_price"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	MarketCap                float64  `json:"market_cap"`
	TotalVolume              float64  `json:"total_volume"`
	Image                    string   `json:"image"`
	LastUpdated              string   `json:"last_updated"`
}

// CoinGeckoClient obtiene snapshots de mercado desde la API pública de
// CoinGecko. No cachea nada: el PriceUpdater guarda el último snapshot
// y decide cuándo volver a pegarle a la API.
type CoinGeckoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCoinGeckoClient crea un cliente con el timeout que usaba el
// frontend original (10 segundos)
func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: coinGeckoBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewCoinGeckoClientWithBaseURL permite apuntar el cliente a otra URL,
// pensado para los tests con httptest
func NewCoinGeckoClientWithBaseURL(baseURL string) *CoinGeckoClient {
	client := NewCoinGeckoClient()
	client.baseURL = baseURL
	return client
}

// GetMemeCoins obtiene el snapshot de mercado para la lista de monedas
// indicada. Cualquier fallo de red o de parseo se devuelve como un
// error genérico de fetch; no hay retry ni backoff, eso es problema
// del que llama.
func (c *CoinGeckoClient) GetMemeCoins(coinIDs []string) ([]models.Coin, error) {
	url := fmt.Sprintf(
		"%s/coins/markets?vs_currency=usd&ids=%s&order=market_cap_desc&per_page=%d&page=1&sparkline=false&price_change_percentage=24h",
		c.baseURL, strings.Join(coinIDs, ","), len(coinIDs),
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		log.Printf("Error al obtener las monedas meme: %v", err)
		return nil, fmt.Errorf("no se pudieron obtener los datos de las monedas")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("CoinGecko respondió con estado %d", resp.StatusCode)
		return nil, fmt.Errorf("no se pudieron obtener los datos de las monedas")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error al leer la respuesta de CoinGecko: %v", err)
		return nil, fmt.Errorf("no se pudieron obtener los datos de las monedas")
	}

	var rows []marketsRow
	if err := json.Unmarshal(body, &rows); err != nil {
		log.Printf("Error al decodificar la respuesta de CoinGecko: %v", err)
		return nil, fmt.Errorf("no se pudieron obtener los datos de las monedas")
	}

	coins := make([]models.Coin, 0, len(rows))
	for _, row := range rows {
		change := 0.0
		if row.PriceChangePercentage24h != nil {
			change = *row.PriceChangePercentage24h
		}
		coins = append(coins, models.Coin{
			ID:                       row.ID,
			Symbol:                   row.Symbol,
			Name:                     row.Name,
			CurrentPrice:             row.CurrentPrice,
			PriceChangePercentage24h: change,
			MarketCap:                row.MarketCap,
			TotalVolume:              row.TotalVolume,
			Image:                    row.Image,
			LastUpdated:              row.LastUpdated,
		})
	}

	return coins, nil
}
