package services

import (
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/models"
)

// AlertCheckerInterface define lo único que el actualizador necesita
// del repositorio de alertas
type AlertCheckerInterface interface {
	CheckAlerts(currentPrices map[string]float64) []models.PriceAlert
}

// PriceUpdater es el servicio que refresca los precios de las monedas
// meme periódicamente. Después de cada fetch exitoso corre el chequeo
// de alertas con el mapa de precios completo, así las alertas nunca ven
// un snapshot a medio armar.
type PriceUpdater struct {
	interval   time.Duration
	coinIDs    []string
	client     *CoinGeckoClient
	alertRepo  AlertCheckerInterface
	isRunning  bool
	stopChan   chan struct{}
	mutex      sync.Mutex
	coins      []models.Coin
	lastUpdate time.Time
}

// NewPriceUpdater crea un nuevo servicio de actualización de precios
func NewPriceUpdater(interval time.Duration, client *CoinGeckoClient, alertRepo AlertCheckerInterface) *PriceUpdater {
	return &PriceUpdater{
		interval:  interval,
		coinIDs:   MemeCoinIDs,
		client:    client,
		alertRepo: alertRepo,
		stopChan:  make(chan struct{}),
	}
}

// Start inicia el ciclo de actualización en segundo plano
func (u *PriceUpdater) Start() {
	u.mutex.Lock()
	if u.isRunning {
		u.mutex.Unlock()
		return
	}
	u.isRunning = true
	u.mutex.Unlock()

	go func() {
		// Primer fetch inmediato para no arrancar con la pantalla vacía
		if _, err := u.Refresh(); err != nil {
			log.Printf("Fallo la actualización inicial de precios: %v", err)
		}

		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := u.Refresh(); err != nil {
					log.Printf("Fallo la actualización periódica de precios: %v", err)
				}
			case <-u.stopChan:
				return
			}
		}
	}()

	log.Printf("Actualizador de precios iniciado (cada %v)", u.interval)
}

// Stop detiene el ciclo de actualización
func (u *PriceUpdater) Stop() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if !u.isRunning {
		return
	}
	u.isRunning = false
	close(u.stopChan)
	log.Println("Actualizador de precios detenido")
}

// Refresh fuerza un fetch sincrónico y evalúa las alertas con el
// snapshot nuevo. Devuelve las alertas disparadas en esta pasada. Si el
// fetch falla, el snapshot anterior queda intacto y no se evalúa nada:
// un fallo transitorio de red nunca muta datos.
func (u *PriceUpdater) Refresh() ([]models.PriceAlert, error) {
	coins, err := u.client.GetMemeCoins(u.coinIDs)
	if err != nil {
		return nil, err
	}

	u.mutex.Lock()
	u.coins = coins
	u.lastUpdate = time.Now()
	u.mutex.Unlock()

	triggered := u.alertRepo.CheckAlerts(models.PriceMap(coins))
	for _, alert := range triggered {
		log.Printf("Alerta disparada: %s (%s) cruzó %s el objetivo %v",
			alert.CoinName, alert.CoinSymbol, alert.Condition, alert.TargetPrice)
	}
	return triggered, nil
}

// GetCoins devuelve el último snapshot conocido y cuándo se obtuvo.
// Puede devolver una lista vacía si todavía no hubo un fetch exitoso.
func (u *PriceUpdater) GetCoins() ([]models.Coin, time.Time) {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	coins := make([]models.Coin, len(u.coins))
	copy(coins, u.coins)
	return coins, u.lastUpdate
}

// CurrentPrices devuelve el mapa coinId -> precio del último snapshot
func (u *PriceUpdater) CurrentPrices() map[string]float64 {
	coins, _ := u.GetCoins()
	return models.PriceMap(coins)
}
