package parcel

import "logistics/internal/core/domain/model/kernel"

// Catalog entries. Selection weights sum to 100.
var (
	Small      = mustType("SMALL", "Small", kernel.MustDimensions(30, 30, 30), 10, 50)
	Medium     = mustType("MEDIUM", "Medium", kernel.MustDimensions(45, 45, 60), 20, 25)
	Large      = mustType("LARGE", "Large", kernel.MustDimensions(60, 60, 40), 40, 10)
	ExtraLarge = mustType("EXTRA_LARGE", "Extra Large", kernel.MustDimensions(90, 90, 90), 80, 10)
	Wardrobe   = mustType("WARDROBE", "Wardrobe", kernel.MustDimensions(60, 60, 120), 40, 5)
)

// Catalog returns a fresh copy of the fixed package-type table in declaration order.
func Catalog() []Type {
	return []Type{Small, Medium, Large, ExtraLarge, Wardrobe}
}
