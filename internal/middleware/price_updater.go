package middleware

import (
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/services"
)

// Instancias globales de los servicios en segundo plano
var (
	priceCacherInstance    *services.PriceCacher
	importerWorkerInstance *services.ImporterWorker
)

// SetPriceCacher establece la instancia del servicio de cacheo de precios
func SetPriceCacher(cacher *services.PriceCacher) {
	priceCacherInstance = cacher
}

// GetPriceCacher obtiene la instancia del servicio de cacheo de precios
func GetPriceCacher() *services.PriceCacher {
	return priceCacherInstance
}

// SetImporterWorker establece la instancia del worker de importación
func SetImporterWorker(worker *services.ImporterWorker) {
	importerWorkerInstance = worker
}

// GetImporterWorker obtiene la instancia del worker de importación
func GetImporterWorker() *services.ImporterWorker {
	return importerWorkerInstance
}
