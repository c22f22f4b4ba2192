package main

import (
	"log"
	"os"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/middleware"
	routes "github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/server"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancias globales de los servicios en segundo plano
var (
	priceCacher    *services.PriceCacher
	importerWorker *services.ImporterWorker
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Inicializar la caché de precios
	if err := services.InitPriceCache(); err != nil {
		log.Fatalf("Error al inicializar la caché de precios: %v", err)
	}

	// Inicializar repositorios
	middleware.InitAuth()
	middleware.InitCrypto()

	// Iniciar el servicio de cacheo de precios
	cacheInterval := 5 * time.Minute
	if intervalStr := os.Getenv("PRICE_CACHE_INTERVAL"); intervalStr != "" {
		if interval, err := time.ParseDuration(intervalStr); err == nil {
			cacheInterval = interval
		}
	}

	priceCacher = services.NewPriceCacher(cacheInterval)
	priceCacher.Start()
	defer priceCacher.Stop()

	// Iniciar el worker de importación
	importerWorker = services.NewImporterWorker()
	importerWorker.Start()
	defer importerWorker.Stop()

	// Hacer disponibles los servicios para los handlers
	middleware.SetPriceCacher(priceCacher)
	middleware.SetImporterWorker(importerWorker)

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
