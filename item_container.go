package proptree

// DictItem exposes its slot as a nested dictionary. The returned map is the
// stored map: mutating it in place is visible through the parent immediately,
// and repeated reads alias the same instance.
type DictItem struct {
	*Item
}

// NewDictItem attaches a dictionary-typed item to parent.
func NewDictItem(parent Container, name string) *DictItem {
	return &DictItem{Item: NewItem(parent, name)}
}

// Dict returns the nested dictionary, materializing and storing an empty one
// on first access when the slot is absent.
func (it *DictItem) Dict() map[string]any {
	if m, ok := it.Value().(map[string]any); ok && m != nil {
		return m
	}
	m := map[string]any{}
	it.SetValue(m)
	return m
}

// SetDict replaces the whole nested dictionary.
func (it *DictItem) SetDict(m map[string]any) {
	it.SetValue(m)
}

// ListItem exposes its slot as a nested ordered list. Element mutation on the
// returned slice is visible through the parent; growing the list must go
// through Append or SetList, since Go's append may reallocate the backing
// array and break the alias.
type ListItem struct {
	*Item
}

// NewListItem attaches a list-typed item to parent.
func NewListItem(parent Container, name string) *ListItem {
	return &ListItem{Item: NewItem(parent, name)}
}

// List returns the nested list, materializing and storing an empty one on
// first access when the slot is absent.
func (it *ListItem) List() []any {
	if s, ok := it.Value().([]any); ok && s != nil {
		return s
	}
	s := []any{}
	it.SetValue(s)
	return s
}

// Append extends the list and stores the result back through the delegation
// chain.
func (it *ListItem) Append(values ...any) {
	it.SetValue(append(it.List(), values...))
}

// SetList replaces the whole nested list.
func (it *ListItem) SetList(s []any) {
	it.SetValue(s)
}
