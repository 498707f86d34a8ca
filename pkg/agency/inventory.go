package agency

import "horizon/pkg/models"

// AddItem appends a component to the engineering inventory.
func (a *Agency) AddItem(item models.InventoryItem) error {
	if err := a.Inventory.Append(item); err != nil {
		return err
	}
	return a.store.SaveInventory(a.Inventory)
}

// RemoveItem deletes a component, returning the removed record.
func (a *Agency) RemoveItem(index int) (models.InventoryItem, error) {
	item, err := a.Inventory.At(index)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if err := a.Inventory.RemoveAt(index); err != nil {
		return models.InventoryItem{}, err
	}
	return item, a.store.SaveInventory(a.Inventory)
}
