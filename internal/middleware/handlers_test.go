package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/services"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRouter arma un router con repositorios sobre almacenamiento en
// memoria y un actualizador apuntado a un servidor de mercado falso
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	alertRepo := InitAlerts(store)
	InitPortfolio(store)

	market := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"dogecoin","symbol":"doge","name":"Dogecoin","current_price":0.09,"price_change_percentage_24h":1.0,"market_cap":12000000000,"total_volume":1,"image":"","last_updated":""}]`))
	}))
	t.Cleanup(market.Close)

	updater := services.NewPriceUpdater(time.Hour, services.NewCoinGeckoClientWithBaseURL(market.URL), alertRepo)
	SetPriceUpdater(updater)

	router := gin.New()
	router.GET("/coins", GetCoins)
	router.POST("/refresh", RefreshCoins)
	router.GET("/alerts", GetAlerts)
	router.POST("/alerts", CreateAlert)
	router.PUT("/alerts/:id/toggle", ToggleAlert)
	router.DELETE("/alerts/:id", DeleteAlert)
	router.GET("/portfolio", GetPortfolio)
	router.POST("/holdings", CreateHolding)
	router.DELETE("/holdings/:id", DeleteHolding)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateAlert_Handler(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodPost, "/alerts",
		`{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":0.10,"condition":"above"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		Alert struct {
			ID       string `json:"id"`
			IsActive bool   `json:"isActive"`
		} `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Alert.ID)
	assert.True(t, body.Alert.IsActive)

	list := doRequest(router, http.MethodGet, "/alerts", "")
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), body.Alert.ID)
}

func TestCreateAlert_EntradaInvalida(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"precio objetivo cero", `{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":0,"condition":"above"}`},
		{"precio objetivo negativo", `{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":-1,"condition":"above"}`},
		{"condición desconocida", `{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":0.1,"condition":"sideways"}`},
		{"sin coinId", `{"coinName":"Dogecoin","coinSymbol":"doge","targetPrice":0.1,"condition":"above"}`},
		{"precio no numérico", `{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":"mucho","condition":"above"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(router, http.MethodPost, "/alerts", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}

	// Nada llegó a los repositorios
	list := doRequest(router, http.MethodGet, "/alerts", "")
	assert.JSONEq(t, `{"alerts":[]}`, list.Body.String())
}

func TestCreateHolding_EntradaInvalida(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodPost, "/holdings",
		`{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","amount":-5,"buyPrice":0.08}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPortfolioFlow(t *testing.T) {
	router := setupRouter(t)

	// Dos compras de la misma moneda se fusionan en una posición
	first := doRequest(router, http.MethodPost, "/holdings",
		`{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","amount":100,"buyPrice":0.08}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(router, http.MethodPost, "/holdings",
		`{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","amount":50,"buyPrice":0.10}`)
	require.Equal(t, http.StatusCreated, second.Code)

	// Refrescar precios para que el resumen tenga contra qué valuar
	refresh := doRequest(router, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusOK, refresh.Code)

	resp := doRequest(router, http.MethodGet, "/portfolio", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Holdings []struct {
			ID     string  `json:"id"`
			Amount float64 `json:"amount"`
		} `json:"holdings"`
		Summary struct {
			TotalInvested float64 `json:"totalInvested"`
			CurrentValue  float64 `json:"currentValue"`
			TotalPnL      float64 `json:"totalPnL"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Holdings, 1)
	assert.Equal(t, 150.0, body.Holdings[0].Amount)
	assert.InDelta(t, 13.0, body.Summary.TotalInvested, 1e-9)
	assert.InDelta(t, 13.5, body.Summary.CurrentValue, 1e-9)
	assert.InDelta(t, 0.5, body.Summary.TotalPnL, 1e-9)

	// Eliminar la posición completa
	del := doRequest(router, http.MethodDelete, "/holdings/"+body.Holdings[0].ID, "")
	assert.Equal(t, http.StatusOK, del.Code)

	after := doRequest(router, http.MethodGet, "/portfolio", "")
	assert.Contains(t, after.Body.String(), `"holdings":[]`)
}

func TestRefresh_DisparaAlertas(t *testing.T) {
	router := setupRouter(t)

	// El precio del mercado falso es 0.09: la alerta above 0.05 dispara
	create := doRequest(router, http.MethodPost, "/alerts",
		`{"coinId":"dogecoin","coinName":"Dogecoin","coinSymbol":"doge","targetPrice":0.05,"condition":"above"}`)
	require.Equal(t, http.StatusCreated, create.Code)

	refresh := doRequest(router, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusOK, refresh.Code)

	var body struct {
		TriggeredAlerts []struct {
			CoinID      string `json:"coinId"`
			IsActive    bool   `json:"isActive"`
			TriggeredAt string `json:"triggeredAt"`
		} `json:"triggered_alerts"`
	}
	require.NoError(t, json.Unmarshal(refresh.Body.Bytes(), &body))
	require.Len(t, body.TriggeredAlerts, 1)
	assert.Equal(t, "dogecoin", body.TriggeredAlerts[0].CoinID)
	assert.False(t, body.TriggeredAlerts[0].IsActive)
	assert.NotEmpty(t, body.TriggeredAlerts[0].TriggeredAt)

	// Un segundo refresh no la vuelve a disparar
	again := doRequest(router, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusOK, again.Code)
	assert.Contains(t, again.Body.String(), `"triggered_alerts":[]`)
}

func TestGetCoins_Handler(t *testing.T) {
	router := setupRouter(t)

	resp := doRequest(router, http.MethodGet, "/coins", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Coins []struct {
			ID               string `json:"id"`
			PriceDisplay     string `json:"price_display"`
			MarketCapDisplay string `json:"market_cap_display"`
		} `json:"coins"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Coins, 1)
	assert.Equal(t, "dogecoin", body.Coins[0].ID)
	assert.Equal(t, "$0.0900", body.Coins[0].PriceDisplay)
	assert.Equal(t, "$12.00B", body.Coins[0].MarketCapDisplay)
}
