// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbols lists the supported display currency symbols.
// Currency is cosmetic only; no conversion logic exists.
var CurrencySymbols = []string{"₹", "$", "€", "£"}

// DefaultCurrency is the currency symbol used before the user picks one.
const DefaultCurrency = "$"

// Theme represents the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is the theme used before the user picks one.
const DefaultTheme = ThemeSystem

// IsValidCurrency reports whether the symbol is one of the supported values.
func IsValidCurrency(symbol string) bool {
	for _, s := range CurrencySymbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// IsValidTheme reports whether the theme is one of the known values.
func IsValidTheme(theme Theme) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Settings holds the per-installation preferences and the explicit-clear
// marker that suppresses demo reseeding.
type Settings struct {
	Currency    string
	Theme       Theme
	DataCleared bool
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() *Settings {
	return &Settings{
		Currency: DefaultCurrency,
		Theme:    DefaultTheme,
	}
}

// FormatAmount renders an amount with the given currency symbol, trimming
// trailing zeros past two decimal places ("$1200", "$85.5", "$12.34").
func FormatAmount(symbol string, amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return symbol + s
}
