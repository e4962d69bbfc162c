package models

import (
	"fmt"
	"strings"
)

// FormatPrice formatea un precio en USD según su magnitud: las monedas
// meme suelen cotizar por debajo del centavo, así que se muestran más
// decimales cuanto más chico es el precio
func FormatPrice(price float64) string {
	if price < 0.01 {
		return fmt.Sprintf("$%.6f", price)
	}
	if price < 1 {
		return fmt.Sprintf("$%.4f", price)
	}
	return "$" + addThousandsSeparators(fmt.Sprintf("%.2f", price))
}

// FormatMarketCap formatea una capitalización de mercado con sufijo B/M/K
func FormatMarketCap(marketCap float64) string {
	switch {
	case marketCap >= 1e9:
		return fmt.Sprintf("$%.2fB", marketCap/1e9)
	case marketCap >= 1e6:
		return fmt.Sprintf("$%.2fM", marketCap/1e6)
	case marketCap >= 1e3:
		return fmt.Sprintf("$%.2fK", marketCap/1e3)
	default:
		return fmt.Sprintf("$%.2f", marketCap)
	}
}

// FormatPercentage formatea un porcentaje con signo explícito
func FormatPercentage(percentage float64) string {
	sign := ""
	if percentage >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, percentage)
}

// addThousandsSeparators inserta comas como separador de miles en la
// parte entera de un número ya formateado con decimales
func addThousandsSeparators(value string) string {
	parts := strings.SplitN(value, ".", 2)
	integer := parts[0]

	negative := strings.HasPrefix(integer, "-")
	if negative {
		integer = integer[1:]
	}

	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	result := b.String()
	if negative {
		result = "-" + result
	}
	if len(parts) == 2 {
		result += "." + parts[1]
	}
	return result
}
