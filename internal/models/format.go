package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber formatea un número eliminando los ceros finales.
// Si es un número entero devuelve solo la parte entera, en caso
// contrario devuelve el valor decimal sin ceros sobrantes.
func FormatNumber(value decimal.Decimal) string {
	if value.IsInteger() {
		return strconv.FormatInt(value.IntPart(), 10)
	}

	s := value.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// FormatThousands formatea un entero con separadores de miles (ej. 1,234,567)
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	// Insertar comas cada tres dígitos desde la derecha
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// FormatMarketPrice formatea un precio según el mercado de la transacción:
// los precios en toman se muestran como enteros con separadores de miles,
// los precios en usdt se redondean a 2 decimales.
func FormatMarketPrice(price decimal.Decimal, market string) string {
	if market == MarketToman {
		return FormatThousands(price.IntPart())
	}
	return FormatNumber(price.Round(2))
}
