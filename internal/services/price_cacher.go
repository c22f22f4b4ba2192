package services

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

// ExchangeRepositoryInterface define las operaciones que necesitamos del repositorio
type ExchangeRepositoryInterface interface {
	GetAllExchanges() ([]models.Exchange, error)
}

// PriceCacher es un servicio que cachea periódicamente todos los precios
// de las plataformas registradas como exchanges.
type PriceCacher struct {
	interval     time.Duration
	exchangeRepo ExchangeRepositoryInterface
	getPlatform  func(name string) (Platform, error)
	isRunning    bool
	stopChan     chan struct{}
	mutex        sync.Mutex
	lastUpdated  time.Time
	lastCached   map[string]int
}

// NewPriceCacher crea un nuevo servicio de cacheo de precios
func NewPriceCacher(interval time.Duration) *PriceCacher {
	// Aquí usamos la implementación concreta, pero a través de la interfaz
	return &PriceCacher{
		interval:     interval,
		exchangeRepo: &exchangeRepositoryAdapter{db: database.DB},
		getPlatform:  GetPlatform,
		isRunning:    false,
		stopChan:     make(chan struct{}),
		lastCached:   make(map[string]int),
	}
}

// Adaptador del repositorio de exchanges
type exchangeRepositoryAdapter struct {
	db *sql.DB
}

func (a *exchangeRepositoryAdapter) GetAllExchanges() ([]models.Exchange, error) {
	query := `SELECT id, name, created_at, updated_at FROM exchanges ORDER BY created_at`

	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []models.Exchange
	for rows.Next() {
		var exchange models.Exchange
		if err := rows.Scan(&exchange.ID, &exchange.Name, &exchange.CreatedAt, &exchange.UpdatedAt); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}

	return exchanges, nil
}

// Start inicia el servicio de cacheo de precios
func (p *PriceCacher) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.isRunning {
		return
	}

	p.isRunning = true
	p.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		// Cachear inmediatamente al iniciar
		p.cacheAllPrices()

		for {
			select {
			case <-ticker.C:
				p.cacheAllPrices()
			case <-p.stopChan:
				return
			}
		}
	}()

	log.Printf("Servicio de cacheo de precios iniciado con intervalo de %v", p.interval)
}

// Stop detiene el servicio de cacheo de precios
func (p *PriceCacher) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.isRunning {
		return
	}

	p.isRunning = false
	close(p.stopChan)
	log.Printf("Servicio de cacheo de precios detenido")
}

// cacheAllPrices recorre los exchanges registrados y cachea todos los
// precios de cada plataforma. Cada plataforma se cachea una sola vez
// aunque haya varios exchanges con el mismo nombre.
func (p *PriceCacher) cacheAllPrices() {
	exchanges, err := p.exchangeRepo.GetAllExchanges()
	if err != nil {
		log.Printf("Error al obtener exchanges: %v", err)
		return
	}

	cached := make(map[string]int)
	for _, exchange := range exchanges {
		if _, done := cached[exchange.Name]; done {
			continue
		}

		platform, err := p.getPlatform(exchange.Name)
		if err != nil {
			log.Printf("Error al obtener la plataforma de %s: %v", exchange.Name, err)
			continue
		}

		count, err := platform.CacheAllPrices()
		if err != nil {
			log.Printf("Error al cachear precios de %s: %v", exchange.Name, err)
			continue
		}

		cached[exchange.Name] = count
	}

	p.mutex.Lock()
	p.lastUpdated = time.Now()
	p.lastCached = cached
	p.mutex.Unlock()

	log.Printf("Cacheo de precios completado para %d plataformas", len(cached))
}

// GetLastUpdated obtiene la última vez que se cachearon los precios
func (p *PriceCacher) GetLastUpdated() time.Time {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.lastUpdated
}

// GetLastCached obtiene la cantidad de precios cacheados por plataforma
// en la última pasada
func (p *PriceCacher) GetLastCached() map[string]int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	result := make(map[string]int, len(p.lastCached))
	for name, count := range p.lastCached {
		result[name] = count
	}
	return result
}
