package models

// InventoryItem is one component line of the engineering inventory.
// UnitCost is in millions of dollars. Quantity and cost ranges are checked
// at entry time by the input layer.
type InventoryItem struct {
	Name     string
	Category string
	Quantity float64
	Unit     string
	UnitCost float64
}
