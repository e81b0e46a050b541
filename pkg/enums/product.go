package enums

import "fmt"

// ProductCategory groups the merchandise catalog.
type ProductCategory string

const (
	ProductCategoryApparel     ProductCategory = "APPAREL"
	ProductCategoryAccessories ProductCategory = "ACCESSORIES"
	ProductCategoryDecals      ProductCategory = "DECALS"
	ProductCategoryCarCare     ProductCategory = "CAR_CARE"
	ProductCategoryOther       ProductCategory = "OTHER"
)

var validProductCategories = []ProductCategory{
	ProductCategoryApparel,
	ProductCategoryAccessories,
	ProductCategoryDecals,
	ProductCategoryCarCare,
	ProductCategoryOther,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
