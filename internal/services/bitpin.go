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

// Bitpin es el cliente de la API pública de mercados de Bitpin
type Bitpin struct {
	BaseURL string
	client  *http.Client
}

func NewBitpin() *Bitpin {
	return &Bitpin{
		BaseURL: "https://api.bitpin.ir",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *Bitpin) Name() string {
	return models.ExchangeBitpin
}

// bitpinCode construye el código de mercado de Bitpin (ej. BTC_IRT)
func bitpinCode(coinCode, market string) string {
	return strings.ToUpper(coinCode) + "_" + strings.ToUpper(market)
}

func (b *Bitpin) fetchMarkets() (models.BitpinMarkets, error) {
	resp, err := b.client.Get(b.BaseURL + "/v1/mkt/markets/")
	if err != nil {
		log.Printf("Error haciendo la petición HTTP a bitpin: %v", err)
		return models.BitpinMarkets{}, fmt.Errorf("error en la petición HTTP: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.BitpinMarkets{}, fmt.Errorf("bitpin devolvió el estado %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error leyendo la respuesta de bitpin: %v", err)
		return models.BitpinMarkets{}, fmt.Errorf("error leyendo respuesta: %v", err)
	}

	markets, err := models.UnmarshalBitpinMarkets(body)
	if err != nil {
		log.Printf("Error decodificando JSON de bitpin: %v", err)
		return models.BitpinMarkets{}, fmt.Errorf("error decodificando JSON: %v", err)
	}

	return markets, nil
}

// GetPrice obtiene el precio actual de una moneda en el mercado dado.
// Bitpin no tiene un endpoint por símbolo, así que se busca el mercado
// dentro de la lista completa. La caché compartida evita la mayoría de
// las llamadas.
func (b *Bitpin) GetPrice(coinCode, market string) (decimal.Decimal, error) {
	if price, exists := GetCachedPrice(b.Name(), coinCode, market); exists {
		return price, nil
	}

	markets, err := b.fetchMarkets()
	if err != nil {
		return decimal.Zero, err
	}

	code := bitpinCode(coinCode, market)
	for _, m := range markets.Results {
		if strings.EqualFold(m.Code, code) {
			price, err := decimal.NewFromString(m.Price)
			if err != nil {
				return decimal.Zero, fmt.Errorf("precio no válido para %s: %v", code, err)
			}

			SetCachedPrice(b.Name(), coinCode, market, price)
			WaitPriceCache()

			return price, nil
		}
	}

	return decimal.Zero, fmt.Errorf("no se encontró el mercado %s en bitpin", code)
}

// CacheAllPrices obtiene la lista completa de mercados de Bitpin y
// guarda todos los precios en la caché. Devuelve la cantidad de
// precios cacheados.
func (b *Bitpin) CacheAllPrices() (int, error) {
	markets, err := b.fetchMarkets()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range markets.Results {
		market := marketFromQuote(m.Currency2.Code)
		if market == "" {
			continue // Mercado no soportado
		}

		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			log.Printf("Precio no válido para el mercado %s de bitpin: %v", m.Code, err)
			continue
		}

		SetCachedPrice(b.Name(), m.Currency1.Code, market, price)
		count++
	}

	WaitPriceCache()
	log.Printf("Se cachearon %d precios de bitpin", count)

	return count, nil
}
