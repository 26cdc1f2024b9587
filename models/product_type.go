package models

import "errors"

// ProductType is the closed set of product kinds the catalog sells.
type ProductType string

const (
	TypeClothes ProductType = "clothes"
	TypeShoes   ProductType = "shoes"
)

// ErrInvalidProductType is returned when a raw value is outside the enumeration.
var ErrInvalidProductType = errors.New("type must be clothes or shoes")

// ParseProductType validates a raw query or payload value at the boundary so
// the rest of the code only ever sees a valid ProductType.
func ParseProductType(raw string) (ProductType, error) {
	switch t := ProductType(raw); t {
	case TypeClothes, TypeShoes:
		return t, nil
	}
	return "", ErrInvalidProductType
}
