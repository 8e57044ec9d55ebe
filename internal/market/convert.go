// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package market

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/market-pulse/models"
)

// Fixed USD unit prices standing in for a price oracle.
const (
	CryptoUnitPriceUSD = 50000
	StockUnitPriceUSD  = 100
)

// Currency codes supported by the converter.
const (
	CurrencyUSD = "USD"
	CurrencyPHP = "PHP"
)

var usdMultipliers = map[string]float64{
	CurrencyUSD: 1,
	CurrencyPHP: 56,
}

// Currencies lists the converter targets in display order.
var Currencies = []string{CurrencyPHP, CurrencyUSD}

// UnitPriceUSD returns the fixed USD price of one unit of an asset type.
func UnitPriceUSD(t models.AssetType) float64 {
	if t == models.AssetCrypto {
		return CryptoUnitPriceUSD
	}
	return StockUnitPriceUSD
}

// Convert values amount units of asset in currency. An unrecognised
// currency keeps the USD value. The result is display-only floating point.
func Convert(amount float64, asset models.Asset, currency string) (models.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return models.Conversion{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = CurrencyPHP
	}

	multiplier, ok := usdMultipliers[currency]
	if !ok {
		multiplier = 1
	}

	price := UnitPriceUSD(asset.Type)
	return models.Conversion{
		Symbol:       asset.Symbol,
		Amount:       amount,
		UnitPriceUSD: price,
		Currency:     currency,
		Value:        amount * price * multiplier,
	}, nil
}
