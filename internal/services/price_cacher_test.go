package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

// Repositorio de exchanges falso para los tests del servicio de cacheo
type fakeExchangeRepo struct {
	exchanges []models.Exchange
}

func (f *fakeExchangeRepo) GetAllExchanges() ([]models.Exchange, error) {
	return f.exchanges, nil
}

// Plataforma falsa que cuenta cuántas veces se cachearon sus precios
type fakePlatform struct {
	name   string
	count  int
	mutex  sync.Mutex
	calls  int
	cached chan struct{}
}

func (f *fakePlatform) Name() string { return f.name }

func (f *fakePlatform) GetPrice(coinCode, market string) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("no implementado")
}

func (f *fakePlatform) CacheAllPrices() (int, error) {
	f.mutex.Lock()
	f.calls++
	f.mutex.Unlock()

	if f.cached != nil {
		select {
		case f.cached <- struct{}{}:
		default:
		}
	}
	return f.count, nil
}

func (f *fakePlatform) callCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func TestPriceCacherCacheAllPrices(t *testing.T) {
	wallex := &fakePlatform{name: models.ExchangeWallex, count: 3}
	bitpin := &fakePlatform{name: models.ExchangeBitpin, count: 2}

	cacher := NewPriceCacher(time.Minute)
	// Dos exchanges con el mismo nombre solo deben cachearse una vez
	cacher.exchangeRepo = &fakeExchangeRepo{exchanges: []models.Exchange{
		{ID: "ex-1", Name: models.ExchangeWallex},
		{ID: "ex-2", Name: models.ExchangeWallex},
		{ID: "ex-3", Name: models.ExchangeBitpin},
	}}
	cacher.getPlatform = func(name string) (Platform, error) {
		switch name {
		case models.ExchangeWallex:
			return wallex, nil
		case models.ExchangeBitpin:
			return bitpin, nil
		}
		return nil, errors.New("plataforma desconocida")
	}

	cacher.cacheAllPrices()

	if wallex.callCount() != 1 {
		t.Errorf("wallex se cacheó %d veces, se esperaba 1", wallex.callCount())
	}
	if bitpin.callCount() != 1 {
		t.Errorf("bitpin se cacheó %d veces, se esperaba 1", bitpin.callCount())
	}

	cached := cacher.GetLastCached()
	if cached[models.ExchangeWallex] != 3 || cached[models.ExchangeBitpin] != 2 {
		t.Errorf("conteos cacheados = %v, se esperaba wallex=3 bitpin=2", cached)
	}
	if cacher.GetLastUpdated().IsZero() {
		t.Error("la última actualización debería estar registrada")
	}

	// GetLastCached devuelve una copia, no el mapa interno
	cached[models.ExchangeWallex] = 99
	if cacher.GetLastCached()[models.ExchangeWallex] != 3 {
		t.Error("modificar el resultado no debe afectar el estado interno")
	}
}

func TestPriceCacherStartStop(t *testing.T) {
	cached := make(chan struct{}, 1)
	wallex := &fakePlatform{name: models.ExchangeWallex, count: 1, cached: cached}

	cacher := NewPriceCacher(time.Hour)
	cacher.exchangeRepo = &fakeExchangeRepo{exchanges: []models.Exchange{
		{ID: "ex-1", Name: models.ExchangeWallex},
	}}
	cacher.getPlatform = func(name string) (Platform, error) {
		return wallex, nil
	}

	cacher.Start()
	// Iniciar dos veces no debe lanzar otra goroutine
	cacher.Start()

	// Al iniciar se cachea inmediatamente, sin esperar al primer tick
	select {
	case <-cached:
	case <-time.After(2 * time.Second):
		t.Fatal("el servicio no cacheó los precios al iniciar")
	}

	cacher.Stop()
	// Detener dos veces no debe cerrar el canal otra vez
	cacher.Stop()
}
