package console

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"horizon/pkg/models"
)

func (c *Console) engineeringDashboard() {
	for {
		fmt.Fprintf(c.out, "\n%sENGINEERING%s\n", colorGreen, colorReset)
		fmt.Fprintln(c.out, " [1] Inventory")
		fmt.Fprintln(c.out, " [2] Rover Builder")
		fmt.Fprintln(c.out, " [3] Add Item")
		fmt.Fprintln(c.out, " [4] Delete Item")
		fmt.Fprintln(c.out, " [5] Back")

		switch c.choose("Select option: ") {
		case '1':
			c.inventoryList()
		case '2':
			c.roverBuilder()
		case '3':
			c.addInventoryItem()
		case '4':
			c.deleteInventoryItem()
		case '5', 0:
			return
		}
	}
}

func (c *Console) inventoryList() {
	fmt.Fprintf(c.out, "\n%sINVENTORY%s\n", colorGreen, colorReset)
	fmt.Fprintf(c.out, "%-5s %-30s %-12s %-12s %s\n", "ID", "ITEM", "CAT", "QTY", "COST")

	c.agency.Inventory.Scan(func(i int, item models.InventoryItem) bool {
		fmt.Fprintf(c.out, "%-5d %-30s %-12s %-8s %-3s $%sM\n",
			i+1, item.Name, item.Category,
			humanize.Commaf(item.Quantity), item.Unit,
			humanize.Ftoa(item.UnitCost))

		return true
	})
}

// roverBuilder is a morale feature. The rover is ASCII; the logbook entry
// is real.
func (c *Console) roverBuilder() {
	name := c.readLine("ROVER BUILDER. Name: ")
	if name == "" {
		return
	}

	fmt.Fprintln(c.out, "   [O-O]")
	fmt.Fprintln(c.out, "  /_____\\")
	fmt.Fprintln(c.out, "  O-----O")

	c.agency.Log.Append("Built Rover: " + name)
}

func (c *Console) addInventoryItem() {
	if c.agency.Inventory.Full() {
		c.denied("Database is Full.")

		return
	}

	fmt.Fprintln(c.out, "ADD COMPONENT")

	name := c.readLine("Name: ")
	if name == "" {
		return
	}

	category := c.readLine("Category (Propulsion/Structure/Power): ")

	quantity, ok := c.readFloat("Quantity: ", 1, 10000)
	if !ok {
		return
	}

	unit := c.readLine("Unit (kg/box/pcs): ")

	unitCost, ok := c.readFloat("Unit Cost ($M): ", 0.001, 100.0)
	if !ok {
		return
	}

	item := models.InventoryItem{
		Name:     name,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
		UnitCost: unitCost,
	}

	if err := c.agency.AddItem(item); err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "%sItem Added.%s\n", colorGreen, colorReset)
}

func (c *Console) deleteInventoryItem() {
	count := c.agency.Inventory.Count()
	if count == 0 {
		c.denied("Inventory is empty.")

		return
	}

	id, ok := c.readInt(fmt.Sprintf("DELETE COMPONENT. IDs(1-%d): ", count), 1, count)
	if !ok {
		return
	}

	item, err := c.agency.RemoveItem(id - 1)
	if err != nil {
		c.denied(err.Error())

		return
	}

	fmt.Fprintf(c.out, "Removing %s... %sUpdated.%s\n", item.Name, colorGreen, colorReset)
}
