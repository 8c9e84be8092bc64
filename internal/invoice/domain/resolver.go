package domain

import (
	"fmt"
	"math"
)

// ResolveLineItems matches each requested code against the catalog and
// prices it in minor units. The output order is the request order; nothing
// is sorted or deduplicated. Any unresolved code aborts the whole
// resolution, so a partial invoice can never be produced.
func ResolveLineItems(codes []string, quantities []int, catalog []Product) ([]LineItem, int64, error) {
	if len(codes) == 0 {
		return nil, 0, ErrNoProducts
	}
	if len(quantities) != len(codes) {
		return nil, 0, fmt.Errorf("%w: got %d codes and %d quantities", ErrQuantityMismatch, len(codes), len(quantities))
	}
	if len(catalog) == 0 {
		return nil, 0, ErrEmptyCatalog
	}

	items := make([]LineItem, 0, len(codes))
	var grandTotal int64
	for i, code := range codes {
		quantity := quantities[i]
		if quantity <= 0 {
			return nil, 0, fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, code, quantity)
		}

		product, ok := findProduct(catalog, code)
		if !ok {
			return nil, 0, fmt.Errorf("%w: unknown product code %q", ErrProductNotFound, code)
		}

		unitAmount, err := MinorUnits(product.DiscountedPrice)
		if err != nil {
			return nil, 0, fmt.Errorf("product %q: %w", code, err)
		}

		lineTotal := unitAmount * int64(quantity)
		items = append(items, LineItem{
			Name:        product.Name,
			Description: product.Description,
			UnitAmount:  unitAmount,
			Quantity:    quantity,
			LineTotal:   lineTotal,
		})
		grandTotal += lineTotal
	}
	return items, grandTotal, nil
}

func findProduct(catalog []Product, code string) (Product, bool) {
	for _, product := range catalog {
		if product.Code == code {
			return product, true
		}
	}
	return Product{}, false
}

// MinorUnits converts a major-unit amount to minor units (paise). The
// conversion must be exact: a price whose hundredth-fraction does not land
// on a whole minor unit is rejected rather than silently rounded.
func MinorUnits(amount float64) (int64, error) {
	scaled := amount * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return 0, fmt.Errorf("%w: amount %v does not convert exactly to minor units", ErrFractionalPrice, amount)
	}
	return int64(rounded), nil
}
