package state

// Item is one selectable row inside a panel column.
type Item struct {
	ID     string
	Label  string
	Folder bool
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
