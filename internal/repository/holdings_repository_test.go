package repository

import (
	"testing"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

// Sin exchanges registrados el precio actual no está disponible y las
// tenencias se valoran al precio promedio de compra.
func TestGetHoldings(t *testing.T) {
	setupTestDB(t)
	seedProfile(t, "profile-1", "agus")
	seedCoin(t, "coin-1", "btc", models.MarketToman)

	repo := NewTransactionRepository()

	txs := []*models.Transaction{
		newTestTransaction("tx-1", "profile-1", "coin-1", models.TransactionBuy, "1", "100"),
		newTestTransaction("tx-2", "profile-1", "coin-1", models.TransactionBuy, "1", "200"),
		newTestTransaction("tx-3", "profile-1", "coin-1", models.TransactionSell, "1", "250"),
	}
	for i, tx := range txs {
		tx.Date = tx.Date.AddDate(0, 0, i)
		tx.PlatformID = tx.ConstructPlatformID()
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("error al crear la transacción %s: %v", tx.ID, err)
		}
	}

	holdingsRepo := NewHoldingsRepository()
	holdings, err := holdingsRepo.GetHoldings("profile-1")
	if err != nil {
		t.Fatalf("error al obtener las tenencias: %v", err)
	}

	if len(holdings.Coins) != 1 {
		t.Fatalf("monedas en cartera = %d, se esperaba 1", len(holdings.Coins))
	}

	coin := holdings.Coins[0]
	if coin.CoinCode != "btc" {
		t.Errorf("CoinCode = %s, se esperaba btc", coin.CoinCode)
	}
	// Dos compras suman 300 de inversión; la venta de la mitad deja 150
	if coin.Invested != 150 {
		t.Errorf("Invested = %d, se esperaba 150", coin.Invested)
	}
	if coin.Quantity.String() != "1" {
		t.Errorf("Quantity = %s, se esperaba 1", coin.Quantity.String())
	}
	// Valorada al precio promedio de compra el resultado es neutro
	if coin.CurrentValue != 150 {
		t.Errorf("CurrentValue = %d, se esperaba 150", coin.CurrentValue)
	}
	if coin.Profit != 0 {
		t.Errorf("Profit = %d, se esperaba 0", coin.Profit)
	}
	if coin.ProfitPercentage != "0" {
		t.Errorf("ProfitPercentage = %s, se esperaba 0", coin.ProfitPercentage)
	}
	if coin.Weight != "100" {
		t.Errorf("Weight = %s, se esperaba 100", coin.Weight)
	}

	if holdings.TotalInvested != 150 || holdings.TotalCurrentValue != 150 {
		t.Errorf("totales = %d/%d, se esperaba 150/150", holdings.TotalInvested, holdings.TotalCurrentValue)
	}
	if holdings.ProfitPercentage != "0" {
		t.Errorf("ProfitPercentage total = %s, se esperaba 0", holdings.ProfitPercentage)
	}
}

func TestGetHoldingsEmptyPosition(t *testing.T) {
	setupTestDB(t)
	seedProfile(t, "profile-1", "agus")
	seedCoin(t, "coin-1", "btc", models.MarketToman)

	repo := NewTransactionRepository()

	buy := newTestTransaction("tx-1", "profile-1", "coin-1", models.TransactionBuy, "1", "100")
	sell := newTestTransaction("tx-2", "profile-1", "coin-1", models.TransactionSell, "1", "120")
	sell.Date = buy.Date.AddDate(0, 0, 1)
	sell.PlatformID = sell.ConstructPlatformID()

	for _, tx := range []*models.Transaction{buy, sell} {
		if err := repo.CreateTransaction(tx); err != nil {
			t.Fatalf("error al crear la transacción %s: %v", tx.ID, err)
		}
	}

	holdingsRepo := NewHoldingsRepository()
	holdings, err := holdingsRepo.GetHoldings("profile-1")
	if err != nil {
		t.Fatalf("error al obtener las tenencias: %v", err)
	}

	// Vender toda la posición la saca de la cartera
	if len(holdings.Coins) != 0 {
		t.Errorf("monedas en cartera = %d, se esperaba 0", len(holdings.Coins))
	}
	if holdings.TotalInvested != 0 {
		t.Errorf("TotalInvested = %d, se esperaba 0", holdings.TotalInvested)
	}
}
