package models

import "github.com/shopspring/decimal"

// TransactionDetails agrega a la transacción los valores derivados del
// precio actual de la moneda, junto con los campos ya formateados que
// se muestran en la interfaz de administración.
type TransactionDetails struct {
	Transaction      Transaction     `json:"transaction"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	Total            int64           `json:"total_price"`    // Price * Quantity
	CurrentValue     int64           `json:"current_value"`  // CurrentPrice * Quantity
	ProfitOrLoss     string          `json:"profit_or_loss"` // CurrentValue - Total ("-" para ventas)
	ChangePercentage string          `json:"change_percentage"`

	// Campos formateados para mostrar
	FormattedPrice        string `json:"formatted_price"`
	FormattedCurrentPrice string `json:"formatted_current_price"`
	FormattedTotal        string `json:"formatted_total_price"`
	FormattedCurrentValue string `json:"formatted_current_value"`
	FormattedQuantity     string `json:"formatted_quantity"`
}

// NewTransactionDetails calcula los campos derivados de una transacción
// a partir del precio actual de su moneda.
func NewTransactionDetails(tx Transaction, currentPrice decimal.Decimal) TransactionDetails {
	total := tx.TotalPrice()
	currentValue := currentPrice.Mul(tx.Quantity).IntPart()

	details := TransactionDetails{
		Transaction:           tx,
		CurrentPrice:          currentPrice,
		Total:                 total,
		CurrentValue:          currentValue,
		FormattedPrice:        tx.FormattedPrice(),
		FormattedCurrentPrice: FormatMarketPrice(currentPrice, tx.Market),
		FormattedTotal:        FormatThousands(total),
		FormattedCurrentValue: FormatThousands(currentValue),
		FormattedQuantity:     tx.FormattedQuantity(),
	}

	// Las ventas no muestran ganancia/pérdida ni porcentaje de cambio
	if tx.IsSell() {
		details.ProfitOrLoss = "-"
		details.ChangePercentage = "-"
		return details
	}

	details.ProfitOrLoss = FormatThousands(currentValue - total)

	if total == 0 {
		details.ChangePercentage = "0"
		return details
	}

	pct := decimal.NewFromInt(currentValue - total).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	details.ChangePercentage = FormatNumber(pct)

	return details
}
