package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/middleware"
	routes "github.com/AgusMolinaCode/MemeTracker_Api.git/internal/server"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/services"
	"github.com/AgusMolinaCode/MemeTracker_Api.git/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del actualizador de precios
var priceUpdater *services.PriceUpdater

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS para el frontend
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar el almacenamiento local (el equivalente del localStorage)
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store := storage.NewFileStore(dataDir)

	// Inicializar los repositorios
	alertRepo := middleware.InitAlerts(store)
	middleware.InitPortfolio(store)

	// Iniciar el servicio de actualización de precios
	interval := 60 * time.Second
	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			interval = time.Duration(seconds) * time.Second
		}
	}

	priceUpdater = services.NewPriceUpdater(interval, services.NewCoinGeckoClient(), alertRepo)
	priceUpdater.Start()
	defer priceUpdater.Stop()

	// Hacer disponible el actualizador de precios para los handlers
	middleware.SetPriceUpdater(priceUpdater)

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
