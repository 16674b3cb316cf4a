package domain

// ItemKind distinguishes purchasable materials from craftable recipes
type ItemKind string

const (
	ItemKindMaterial ItemKind = "material"
	ItemKindRecipe   ItemKind = "recipe"
)

// Material is a raw, purchasable input with a fixed price in coins.
// A price of zero or below means the price has not been set yet.
type Material struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Price float64 `json:"price"`
}

// HasPrice reports whether the material carries a usable price
func (m Material) HasPrice() bool {
	return m.Price > 0
}
