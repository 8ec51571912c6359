// services/pricing.go
package services

import (
	"fmt"
	"strings"

	"laundrypro-backend/utils"

	"go.uber.org/zap"
)

// CurrencyPrefix is the display currency for all prices.
const CurrencyPrefix = "R"

// WeightTier maps an inclusive weight range to one flat price. Tiers are
// authored non-overlapping and contiguous; the engine does not verify this
// and picks the first match in table order.
type WeightTier struct {
	MinKg float64 `json:"min_kg"`
	MaxKg float64 `json:"max_kg"`
	Price float64 `json:"price"`
}

// ServiceRate is the tier list for one service, matched by name
// case-insensitively.
type ServiceRate struct {
	Name  string       `json:"name"`
	Tiers []WeightTier `json:"tiers"`
}

// rateTable is the static pricing source of truth. Services missing from it
// fall back to their legacy price-range string for estimates only.
var rateTable = []ServiceRate{
	{
		Name: "Mixed Wash Dry Fold",
		Tiers: []WeightTier{
			{MinKg: 0, MaxKg: 5, Price: 170},
			{MinKg: 6, MaxKg: 10, Price: 300},
			{MinKg: 11, MaxKg: 15, Price: 470},
		},
	},
	{
		Name: "Separated Wash Dry Fold",
		Tiers: []WeightTier{
			{MinKg: 0, MaxKg: 5, Price: 200},
			{MinKg: 6, MaxKg: 10, Price: 350},
			{MinKg: 11, MaxKg: 15, Price: 520},
		},
	},
	{
		Name: "Wash and Dry",
		Tiers: []WeightTier{
			{MinKg: 0, MaxKg: 5, Price: 140},
			{MinKg: 6, MaxKg: 10, Price: 250},
			{MinKg: 11, MaxKg: 15, Price: 390},
		},
	},
	{
		Name: "Ironing",
		Tiers: []WeightTier{
			{MinKg: 0, MaxKg: 5, Price: 120},
			{MinKg: 6, MaxKg: 10, Price: 220},
			{MinKg: 11, MaxKg: 15, Price: 340},
		},
	},
	{
		Name: "Duvets and Blankets",
		Tiers: []WeightTier{
			{MinKg: 0, MaxKg: 3, Price: 150},
			{MinKg: 4, MaxKg: 6, Price: 250},
			{MinKg: 7, MaxKg: 10, Price: 380},
		},
	},
}

func findRate(serviceName string) *ServiceRate {
	for i := range rateTable {
		if strings.EqualFold(rateTable[i].Name, serviceName) {
			return &rateTable[i]
		}
	}
	return nil
}

// CalculatePrice converts a (service name, weight) pair into a flat tier
// price. Unknown services and weights outside every tier return 0; the
// caller decides whether 0 is acceptable to display or persist.
func CalculatePrice(serviceName string, weightKg float64) float64 {
	rate := findRate(serviceName)
	if rate == nil {
		utils.GetLogger().Warn("pricing: unknown service",
			zap.String("service", serviceName))
		return 0
	}
	for _, tier := range rate.Tiers {
		if tier.MinKg <= weightKg && weightKg <= tier.MaxKg {
			return tier.Price
		}
	}
	utils.GetLogger().Warn("pricing: no tier for weight",
		zap.String("service", serviceName),
		zap.Float64("weight_kg", weightKg))
	return 0
}

// ServiceNames lists every service the rate table knows, in table order.
func ServiceNames() []string {
	names := make([]string, 0, len(rateTable))
	for _, rate := range rateTable {
		names = append(names, rate.Name)
	}
	return names
}

// TiersFor returns the tier list for a named service, or false when the
// table has no entry for it.
func TiersFor(serviceName string) ([]WeightTier, bool) {
	rate := findRate(serviceName)
	if rate == nil {
		return nil, false
	}
	tiers := make([]WeightTier, len(rate.Tiers))
	copy(tiers, rate.Tiers)
	return tiers, true
}

// PriceSpan returns the overall [min, max] price across a service's tiers.
func PriceSpan(serviceName string) (min, max float64, ok bool) {
	rate := findRate(serviceName)
	if rate == nil || len(rate.Tiers) == 0 {
		return 0, 0, false
	}
	min, max = rate.Tiers[0].Price, rate.Tiers[0].Price
	for _, tier := range rate.Tiers[1:] {
		if tier.Price < min {
			min = tier.Price
		}
		if tier.Price > max {
			max = tier.Price
		}
	}
	return min, max, true
}

// FormatPrice renders a numeric price as a display string, e.g. "R170.00".
func FormatPrice(v float64) string {
	return fmt.Sprintf("%s%.2f", CurrencyPrefix, v)
}
