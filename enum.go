package proptree

// Member is one entry of an Enum: a symbolic name and the string stored for
// it in the backing dictionary.
type Member struct {
	Name  string
	Value string
}

// Enum is a fixed, ordered set of members. Its only required operations are
// listing the associated strings and looking a member up by its associated
// string with a caller-supplied default.
type Enum struct {
	members []Member
}

// NewEnum constructs an enum from members in declaration order.
func NewEnum(members ...Member) *Enum {
	e := &Enum{members: make([]Member, len(members))}
	copy(e.members, members)
	return e
}

// Members returns the members in declaration order.
func (e *Enum) Members() []Member {
	if e == nil {
		return nil
	}
	out := make([]Member, len(e.members))
	copy(out, e.members)
	return out
}

// Values returns the associated strings in declaration order.
func (e *Enum) Values() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.members))
	for i, m := range e.members {
		out[i] = m.Value
	}
	return out
}

// ByValue returns the member whose associated string equals raw. Unknown raw
// strings resolve to fallback; this is explicit policy, never an error.
func (e *Enum) ByValue(raw string, fallback Member) Member {
	if e == nil {
		return fallback
	}
	for _, m := range e.members {
		if m.Value == raw {
			return m
		}
	}
	return fallback
}

// EnumItem stores one enum member's associated string in its slot.
type EnumItem struct {
	*Item
	enum     *Enum
	fallback Member
}

// NewEnumItem attaches an enum-typed item to parent. Raw strings that match
// no member of enum resolve to fallback on read.
func NewEnumItem(parent Container, name string, enum *Enum, fallback Member) *EnumItem {
	return &EnumItem{
		Item:     NewItem(parent, name),
		enum:     enum,
		fallback: fallback,
	}
}

// Get resolves the stored string to its member, falling back for unknown or
// missing values.
func (it *EnumItem) Get() Member {
	raw, _ := it.Value().(string)
	return it.enum.ByValue(raw, it.fallback)
}

// Set stores the member's associated string.
func (it *EnumItem) Set(m Member) {
	it.SetValue(m.Value)
}
