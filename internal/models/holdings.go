package models

import "github.com/shopspring/decimal"

// Holdings representa el resumen de las tenencias del perfil
type Holdings struct {
	TotalInvested     int64         `json:"total_invested"`      // Total invertido (costo de las compras netas)
	TotalCurrentValue int64         `json:"total_current_value"` // Valor total actual de todas las monedas
	TotalProfit       int64         `json:"total_profit"`        // Ganancia o pérdida total
	ProfitPercentage  string        `json:"profit_percentage"`   // Porcentaje de ganancia/pérdida
	Coins             []CoinHolding `json:"coins"`
}

// CoinHolding representa la posición del perfil en una moneda
type CoinHolding struct {
	CoinCode         string          `json:"coin_code"`
	Title            string          `json:"title"`
	Market           string          `json:"market"`
	Quantity         decimal.Decimal `json:"quantity"`
	Invested         int64           `json:"invested"`      // Total invertido en esta moneda
	CurrentPrice     decimal.Decimal `json:"current_price"` // Precio actual
	CurrentValue     int64           `json:"current_value"` // Quantity * CurrentPrice
	Profit           int64           `json:"profit"`
	ProfitPercentage string          `json:"profit_percentage"`
	Weight           string          `json:"weight"` // Porcentaje del total de la cartera
}
