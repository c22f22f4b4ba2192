package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func buildTransaction(t *testing.T) Transaction {
	t.Helper()

	date, err := time.Parse("2006-01-02 15:04:05", "2024-03-05 10:30:00")
	if err != nil {
		t.Fatalf("error parseando la fecha: %v", err)
	}

	return Transaction{
		ID:       "tx-1",
		Type:     TransactionBuy,
		Date:     date,
		Price:    decimal.RequireFromString("1500000"),
		Quantity: decimal.RequireFromString("0.5"),
		Market:   MarketToman,
		CoinCode: "btc",
	}
}

func TestTotalPrice(t *testing.T) {
	tx := buildTransaction(t)

	if got := tx.TotalPrice(); got != 750000 {
		t.Errorf("TotalPrice = %d, se esperaba 750000", got)
	}
}

func TestTransactionPredicates(t *testing.T) {
	tx := buildTransaction(t)

	if !tx.IsBuy() || tx.IsSell() {
		t.Error("la transacción debería ser una compra")
	}
	if !tx.IsTomanMarket() || tx.IsUsdtMarket() {
		t.Error("la transacción debería estar en el mercado toman")
	}

	tx.Type = TransactionSell
	tx.Market = MarketTether

	if tx.IsBuy() || !tx.IsSell() {
		t.Error("la transacción debería ser una venta")
	}
	if tx.IsTomanMarket() || !tx.IsUsdtMarket() {
		t.Error("la transacción debería estar en el mercado usdt")
	}
}

func TestFormattedFields(t *testing.T) {
	tx := buildTransaction(t)

	if got := tx.FormattedPrice(); got != "1,500,000" {
		t.Errorf("FormattedPrice = %s, se esperaba 1,500,000", got)
	}
	if got := tx.FormattedQuantity(); got != "0.5" {
		t.Errorf("FormattedQuantity = %s, se esperaba 0.5", got)
	}

	// En usdt el precio se redondea a 2 decimales
	tx.Market = MarketTether
	tx.Price = decimal.RequireFromString("65432.109")
	if got := tx.FormattedPrice(); got != "65432.11" {
		t.Errorf("FormattedPrice en usdt = %s, se esperaba 65432.11", got)
	}
}

func TestConstructPlatformID(t *testing.T) {
	tx := buildTransaction(t)
	tx.CoinCode = "BTC"

	expected := "2024-03-05 10:30:00|btc|irt|buy|0.5|1500000"
	if got := tx.ConstructPlatformID(); got != expected {
		t.Errorf("ConstructPlatformID = %s, se esperaba %s", got, expected)
	}
}

func TestNewTransactionDetailsBuy(t *testing.T) {
	tx := buildTransaction(t)
	currentPrice := decimal.RequireFromString("1600000")

	details := NewTransactionDetails(tx, currentPrice)

	if details.Total != 750000 {
		t.Errorf("Total = %d, se esperaba 750000", details.Total)
	}
	if details.CurrentValue != 800000 {
		t.Errorf("CurrentValue = %d, se esperaba 800000", details.CurrentValue)
	}
	if details.ProfitOrLoss != "50,000" {
		t.Errorf("ProfitOrLoss = %s, se esperaba 50,000", details.ProfitOrLoss)
	}
	if details.ChangePercentage != "6.67" {
		t.Errorf("ChangePercentage = %s, se esperaba 6.67", details.ChangePercentage)
	}
	if details.FormattedCurrentValue != "800,000" {
		t.Errorf("FormattedCurrentValue = %s, se esperaba 800,000", details.FormattedCurrentValue)
	}
}

func TestNewTransactionDetailsSell(t *testing.T) {
	tx := buildTransaction(t)
	tx.Type = TransactionSell

	details := NewTransactionDetails(tx, decimal.RequireFromString("1600000"))

	// Las ventas no muestran ganancia/pérdida ni porcentaje de cambio
	if details.ProfitOrLoss != "-" {
		t.Errorf("ProfitOrLoss = %s, se esperaba -", details.ProfitOrLoss)
	}
	if details.ChangePercentage != "-" {
		t.Errorf("ChangePercentage = %s, se esperaba -", details.ChangePercentage)
	}
}

func TestNewTransactionDetailsZeroTotal(t *testing.T) {
	tx := buildTransaction(t)
	tx.Price = decimal.Zero

	details := NewTransactionDetails(tx, decimal.RequireFromString("1600000"))

	if details.ChangePercentage != "0" {
		t.Errorf("ChangePercentage = %s, se esperaba 0", details.ChangePercentage)
	}
}
