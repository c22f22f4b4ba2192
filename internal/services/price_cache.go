package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/shopspring/decimal"
)

// Caché compartida de precios para reducir llamadas a las plataformas
var priceCache *ristretto.Cache

var priceCacheTTL = 5 * time.Minute

// InitPriceCache inicializa la caché de precios. La duración de las
// entradas se puede configurar con la variable PRICE_CACHE_TTL.
func InitPriceCache() error {
	if ttlStr := os.Getenv("PRICE_CACHE_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			log.Printf("Valor de PRICE_CACHE_TTL no válido (%s), se usa el valor por defecto: %v", ttlStr, err)
		} else {
			priceCacheTTL = ttl
		}
	}

	var err error
	priceCache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	return err
}

// priceCacheKey construye la clave de caché para un precio
func priceCacheKey(platform, coinCode, market string) string {
	return strings.ToLower(fmt.Sprintf("%s:%s:%s", platform, coinCode, market))
}

// SetCachedPrice guarda el precio de una moneda en la caché
func SetCachedPrice(platform, coinCode, market string, price decimal.Decimal) {
	if priceCache == nil {
		return
	}
	priceCache.SetWithTTL(priceCacheKey(platform, coinCode, market), price, 1, priceCacheTTL)
}

// GetCachedPrice obtiene el precio de una moneda desde la caché
func GetCachedPrice(platform, coinCode, market string) (decimal.Decimal, bool) {
	if priceCache == nil {
		return decimal.Zero, false
	}
	value, exists := priceCache.Get(priceCacheKey(platform, coinCode, market))
	if !exists {
		return decimal.Zero, false
	}
	price, ok := value.(decimal.Decimal)
	return price, ok
}

// WaitPriceCache espera a que las escrituras pendientes de la caché
// sean visibles para las lecturas.
func WaitPriceCache() {
	if priceCache != nil {
		priceCache.Wait()
	}
}
