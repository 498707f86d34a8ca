package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const inventoryFieldCount = 5

func encodeItem(item models.InventoryItem) string {
	return codec.Join(item.Name, item.Category, codec.FormatFloat(item.Quantity), item.Unit, codec.FormatFloat(item.UnitCost))
}

func decodeItem(_ int, line string) (models.InventoryItem, bool) {
	fields, ok := codec.Split(line, inventoryFieldCount)
	if !ok {
		return models.InventoryItem{}, false
	}
	return models.InventoryItem{
		Name:     fields[0],
		Category: fields[1],
		Quantity: codec.Float(fields[2]),
		Unit:     fields[3],
		UnitCost: codec.Float(fields[4]),
	}, true
}

// LoadInventory hydrates the component table from the inventory store.
func (s *Store) LoadInventory(capacity int) *table.Table[models.InventoryItem] {
	return loadTable(s, inventoryFile, capacity, decodeItem)
}

// SaveInventory rewrites the inventory store.
func (s *Store) SaveInventory(tbl *table.Table[models.InventoryItem]) error {
	return saveTable(s, inventoryFile, countHeader(tbl.Count()), tbl.Records(), encodeItem)
}
