package services

import (
	"fmt"
	"strings"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

// Platform es la integración con una plataforma de intercambio externa.
// Cada plataforma sabe obtener el precio de una moneda en un mercado y
// cachear todos los precios de su lista de mercados en una sola llamada.
type Platform interface {
	Name() string
	GetPrice(coinCode, market string) (decimal.Decimal, error)
	CacheAllPrices() (int, error)
}

// GetPlatform devuelve el cliente de plataforma según el nombre del exchange
func GetPlatform(name string) (Platform, error) {
	switch name {
	case models.ExchangeWallex:
		return NewWallex(), nil
	case models.ExchangeBitpin:
		return NewBitpin(), nil
	}
	return nil, fmt.Errorf("el nombre del exchange no es válido: %s", name)
}

// marketFromQuote convierte la moneda de cotización de una plataforma
// al mercado interno (irt o usdt). Devuelve cadena vacía si el mercado
// no está soportado.
func marketFromQuote(quote string) string {
	switch strings.ToUpper(quote) {
	case "TMN", "IRT":
		return models.MarketToman
	case "USDT":
		return models.MarketTether
	}
	return ""
}
