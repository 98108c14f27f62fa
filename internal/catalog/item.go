package catalog

// Item is one product record. The engines never look at these fields
// directly: sorting sees items only through a key function, and the
// budget selector only through the Product accessors below.
type Item struct {
	ID          int64   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price" yaml:"price"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
}

// UnitPrice implements engine.Product.
func (it Item) UnitPrice() float64 { return it.Price }

// UnitCount implements engine.Product.
func (it Item) UnitCount() int { return it.Quantity }

// Names returns the item names in order. Convenience for assertions and
// text output.
func Names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
