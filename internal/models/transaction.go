package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción soportados
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Mercados soportados (moneda de cotización)
const (
	MarketToman  = "irt"
	MarketTether = "usdt"
)

type Transaction struct {
	ID         string          `json:"id"`
	Type       string          `json:"type" binding:"required,oneof=buy sell"`
	Date       time.Time       `json:"date"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	Market     string          `json:"market" binding:"required,oneof=irt usdt"`
	CoinID     string          `json:"coin_id"`
	CoinCode   string          `json:"coin_code"`
	ProfileID  string          `json:"profile_id"`
	Change     decimal.Decimal `json:"change,omitempty"`
	PlatformID string          `json:"platform_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TotalPrice devuelve el costo total de la transacción (precio * cantidad)
// truncado a la parte entera.
func (t *Transaction) TotalPrice() int64 {
	return t.Price.Mul(t.Quantity).IntPart()
}

func (t *Transaction) IsBuy() bool {
	return t.Type == TransactionBuy
}

func (t *Transaction) IsSell() bool {
	return t.Type == TransactionSell
}

func (t *Transaction) IsTomanMarket() bool {
	return t.Market == MarketToman
}

func (t *Transaction) IsUsdtMarket() bool {
	return t.Market == MarketTether
}

// FormattedPrice devuelve el precio de compra/venta formateado según el mercado
func (t *Transaction) FormattedPrice() string {
	return FormatMarketPrice(t.Price, t.Market)
}

// FormattedQuantity devuelve la cantidad redondeada a 6 decimales
func (t *Transaction) FormattedQuantity() string {
	return FormatNumber(t.Quantity.Round(6))
}

// ConstructPlatformID construye un identificador único para la transacción
// a partir de sus componentes. Se usa para deduplicar filas importadas.
func (t *Transaction) ConstructPlatformID() string {
	parts := []string{
		t.Date.Format("2006-01-02 15:04:05"),
		t.CoinCode,
		t.Market,
		t.Type,
		FormatNumber(t.Quantity),
		FormatNumber(t.Price),
	}
	return strings.ToLower(strings.Join(parts, "|"))
}
