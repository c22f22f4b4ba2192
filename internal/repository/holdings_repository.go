package repository

import (
	"database/sql"
	"log"
	"sort"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

// HoldingsRepository calcula el resumen de tenencias de un perfil a partir
// de sus transacciones
type HoldingsRepository struct {
	db *sql.DB
}

func NewHoldingsRepository() *HoldingsRepository {
	return &HoldingsRepository{
		db: database.DB,
	}
}

// GetHoldings agrega las transacciones del perfil por moneda. Las compras
// suman cantidad e inversión; las ventas reducen la inversión de forma
// proporcional a la cantidad vendida.
func (r *HoldingsRepository) GetHoldings(profileID string) (*models.Holdings, error) {
	query := `
		SELECT t.type, t.price, t.quantity, t.market, c.code, c.title
		FROM transactions t
		JOIN coins c ON c.id = t.coin_id
		WHERE t.profile_id = ?
		ORDER BY t.date`

	rows, err := r.db.Query(query, profileID)
	if err != nil {
		log.Printf("Error al obtener transacciones: %v", err)
		return nil, err
	}
	defer rows.Close()

	type tempHolding struct {
		CoinCode string
		Title    string
		Market   string
		Quantity decimal.Decimal
		Invested decimal.Decimal
	}

	holdingsMap := make(map[string]*tempHolding)

	for rows.Next() {
		var txType, price, quantity string
		var market sql.NullString
		var code string
		var title sql.NullString

		if err := rows.Scan(&txType, &price, &quantity, &market, &code, &title); err != nil {
			log.Printf("Error al escanear transacción: %v", err)
			continue
		}

		priceDec, err := decimal.NewFromString(price)
		if err != nil {
			continue
		}
		quantityDec, err := decimal.NewFromString(quantity)
		if err != nil {
			continue
		}

		holding, exists := holdingsMap[code]
		if !exists {
			holding = &tempHolding{
				CoinCode: code,
				Title:    title.String,
				Market:   market.String,
			}
			holdingsMap[code] = holding
		}

		total := priceDec.Mul(quantityDec)

		if txType == models.TransactionBuy {
			holding.Quantity = holding.Quantity.Add(quantityDec)
			holding.Invested = holding.Invested.Add(total)
		} else if txType == models.TransactionSell {
			// Reducir la inversión proporcionalmente a la cantidad vendida
			if holding.Quantity.GreaterThan(decimal.Zero) {
				proportion := quantityDec.Div(holding.Quantity)
				if proportion.GreaterThan(decimal.NewFromInt(1)) {
					proportion = decimal.NewFromInt(1)
				}
				holding.Invested = holding.Invested.Sub(holding.Invested.Mul(proportion))
				holding.Quantity = holding.Quantity.Sub(quantityDec)
			}
		}
	}

	coinRepo := NewCoinRepository()

	var coins []models.CoinHolding
	totalInvested := int64(0)
	totalCurrentValue := int64(0)

	for _, holding := range holdingsMap {
		if holding.Quantity.LessThanOrEqual(decimal.Zero) {
			continue // Ignorar posiciones vacías
		}

		currentPrice, err := coinRepo.GetCoinPrice(holding.CoinCode, holding.Market)
		if err != nil {
			// Si no hay precio actual, usar el precio promedio de compra
			log.Printf("Error obteniendo precio para %s: %v", holding.CoinCode, err)
			currentPrice = holding.Invested.Div(holding.Quantity)
		}

		invested := holding.Invested.IntPart()
		currentValue := currentPrice.Mul(holding.Quantity).IntPart()
		profit := currentValue - invested

		coin := models.CoinHolding{
			CoinCode:     holding.CoinCode,
			Title:        holding.Title,
			Market:       holding.Market,
			Quantity:     holding.Quantity,
			Invested:     invested,
			CurrentPrice: currentPrice,
			CurrentValue: currentValue,
			Profit:       profit,
		}

		if invested > 0 {
			pct := decimal.NewFromInt(profit).
				Div(decimal.NewFromInt(invested)).
				Mul(decimal.NewFromInt(100)).
				Round(2)
			coin.ProfitPercentage = models.FormatNumber(pct)
		} else {
			coin.ProfitPercentage = "0"
		}

		totalInvested += invested
		totalCurrentValue += currentValue
		coins = append(coins, coin)
	}

	// Calcular el peso de cada moneda en la cartera
	for i := range coins {
		if totalCurrentValue > 0 {
			weight := decimal.NewFromInt(coins[i].CurrentValue).
				Div(decimal.NewFromInt(totalCurrentValue)).
				Mul(decimal.NewFromInt(100)).
				Round(2)
			coins[i].Weight = models.FormatNumber(weight)
		} else {
			coins[i].Weight = "0"
		}
	}

	// Ordenar por valor actual descendente
	sort.Slice(coins, func(i, j int) bool {
		return coins[i].CurrentValue > coins[j].CurrentValue
	})

	totalProfit := totalCurrentValue - totalInvested
	result := &models.Holdings{
		TotalInvested:     totalInvested,
		TotalCurrentValue: totalCurrentValue,
		TotalProfit:       totalProfit,
		Coins:             coins,
	}

	if totalInvested > 0 {
		pct := decimal.NewFromInt(totalProfit).
			Div(decimal.NewFromInt(totalInvested)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
		result.ProfitPercentage = models.FormatNumber(pct)
	} else {
		result.ProfitPercentage = "0"
	}

	return result, nil
}
