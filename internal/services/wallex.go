package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

// Wallex es el cliente de la API pública de mercados de Wallex
type Wallex struct {
	BaseURL string
	client  *http.Client
}

func NewWallex() *Wallex {
	return &Wallex{
		BaseURL: "https://api.wallex.ir",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Wallex) Name() string {
	return models.ExchangeWallex
}

// wallexQuote convierte el mercado interno a la moneda de cotización de Wallex
func wallexQuote(market string) string {
	if market == models.MarketToman {
		return "TMN"
	}
	return strings.ToUpper(market)
}

func (w *Wallex) fetchMarkets() (models.WallexMarkets, error) {
	resp, err := w.client.Get(w.BaseURL + "/v1/markets")
	if err != nil {
		log.Printf("Error haciendo la petición HTTP a wallex: %v", err)
		return models.WallexMarkets{}, fmt.Errorf("error en la petición HTTP: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WallexMarkets{}, fmt.Errorf("wallex devolvió el estado %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error leyendo la respuesta de wallex: %v", err)
		return models.WallexMarkets{}, fmt.Errorf("error leyendo respuesta: %v", err)
	}

	markets, err := models.UnmarshalWallexMarkets(body)
	if err != nil {
		log.Printf("Error decodificando JSON de wallex: %v", err)
		return models.WallexMarkets{}, fmt.Errorf("error decodificando JSON: %v", err)
	}

	return markets, nil
}

// GetPrice obtiene el precio actual de una moneda en el mercado dado.
// Primero consulta la caché compartida y solo va a la red si no hay
// un precio reciente.
func (w *Wallex) GetPrice(coinCode, market string) (decimal.Decimal, error) {
	if price, exists := GetCachedPrice(w.Name(), coinCode, market); exists {
		return price, nil
	}

	markets, err := w.fetchMarkets()
	if err != nil {
		return decimal.Zero, err
	}

	symbol := strings.ToUpper(coinCode) + wallexQuote(market)
	sym, exists := markets.Result.Symbols[symbol]
	if !exists {
		return decimal.Zero, fmt.Errorf("no se encontró el símbolo %s en wallex", symbol)
	}

	price, err := decimal.NewFromString(sym.Stats.LastPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio no válido para %s: %v", symbol, err)
	}

	SetCachedPrice(w.Name(), coinCode, market, price)
	WaitPriceCache()

	return price, nil
}

// CacheAllPrices obtiene la lista completa de mercados de Wallex y
// guarda todos los precios en la caché. Devuelve la cantidad de
// precios cacheados.
func (w *Wallex) CacheAllPrices() (int, error) {
	markets, err := w.fetchMarkets()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, sym := range markets.Result.Symbols {
		market := marketFromQuote(sym.QuoteAsset)
		if market == "" {
			continue // Mercado no soportado
		}

		price, err := decimal.NewFromString(sym.Stats.LastPrice)
		if err != nil {
			log.Printf("Precio no válido para el símbolo %s de wallex: %v", sym.Symbol, err)
			continue
		}

		SetCachedPrice(w.Name(), sym.BaseAsset, market, price)
		count++
	}

	WaitPriceCache()
	log.Printf("Se cachearon %d precios de wallex", count)

	return count, nil
}
