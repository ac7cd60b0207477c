package intake

import "github.com/prabeth/vovos-pedidos-online/models"

// Catalog is a snapshot of the product list keyed by product id.
type Catalog map[string]models.Product

// NewCatalog indexes a product list by id.
func NewCatalog(products []models.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// PriceOf returns the current price of a product, or 0 for ids with no
// catalog entry.
func (c Catalog) PriceOf(id string) float64 {
	return c[id].Price
}

// NameOf returns the product name, falling back to the id when the catalog
// has no entry.
func (c Catalog) NameOf(id string) string {
	if p, ok := c[id]; ok {
		return p.Name
	}
	return id
}

// CartLine is one selected product and its quantity.
type CartLine struct {
	ProductID string
	Quantity  int
}

// Cart maps product ids to positive quantities, preserving insertion order.
// The key set IS the selection: a quantity that reaches zero is removed,
// never stored as zero.
type Cart struct {
	ids []string
	qty map[string]int
}

func NewCart() *Cart {
	return &Cart{qty: make(map[string]int)}
}

// Increment raises the quantity by one, inserting the key if absent.
func (c *Cart) Increment(id string) {
	if _, ok := c.qty[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.qty[id]++
}

// Decrement lowers the quantity by one and drops the key entirely when it
// would reach zero or below.
func (c *Cart) Decrement(id string) {
	q, ok := c.qty[id]
	if !ok {
		return
	}
	if q <= 1 {
		delete(c.qty, id)
		for i, v := range c.ids {
			if v == id {
				c.ids = append(c.ids[:i], c.ids[i+1:]...)
				break
			}
		}
		return
	}
	c.qty[id] = q - 1
}

// Quantity returns the current quantity for id, 0 when not selected.
func (c *Cart) Quantity(id string) int {
	return c.qty[id]
}

// Empty reports whether nothing is selected.
func (c *Cart) Empty() bool {
	return len(c.qty) == 0
}

// Lines returns the selection in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.ids))
	for _, id := range c.ids {
		lines = append(lines, CartLine{ProductID: id, Quantity: c.qty[id]})
	}
	return lines
}

// Total sums quantity times the CURRENT catalog price over the selection.
// Ids missing from the catalog contribute zero.
func (c *Cart) Total(catalog Catalog) float64 {
	var total float64
	for id, q := range c.qty {
		total += float64(q) * catalog.PriceOf(id)
	}
	return total
}

// Reset clears the selection.
func (c *Cart) Reset() {
	c.ids = nil
	c.qty = make(map[string]int)
}
