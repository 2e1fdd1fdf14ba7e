package proptree

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// StringItem reads and writes its slot as a string. The raw value is already
// the semantic value; missing slots read as "".
type StringItem struct {
	*Item
}

// NewStringItem attaches a string-typed item to parent.
func NewStringItem(parent Container, name string) *StringItem {
	return &StringItem{Item: NewItem(parent, name)}
}

// String returns the stored string. Non-string raw values are formatted
// best-effort rather than rejected.
func (it *StringItem) String() string {
	switch v := it.Value().(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// SetString stores s as the item's raw value.
func (it *StringItem) SetString(s string) {
	it.SetValue(s)
}

// IntItem stores integers as locale-independent base-10 strings. Parse
// failures surface as a CoercionError on read; an absent slot reads as zero.
type IntItem struct {
	*Item
}

// NewIntItem attaches an integer-typed item to parent.
func NewIntItem(parent Container, name string) *IntItem {
	return &IntItem{Item: NewItem(parent, name)}
}

// Int parses the raw stored value.
func (it *IntItem) Int() (int64, error) {
	raw := it.Value()
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, coercionError(it.Name(), raw, err)
		}
		return n, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, coercionError(it.Name(), raw, err)
		}
		return n, nil
	default:
		return 0, coercionError(it.Name(), raw, fmt.Errorf("unsupported raw type %T", raw))
	}
}

// SetInt formats n and stores it through the delegation chain.
func (it *IntItem) SetInt(n int64) {
	it.SetValue(strconv.FormatInt(n, 10))
}

// FloatItem stores floats as base-10 strings formatted with the shortest
// representation that parses back to the same float64, so format→parse is
// lossless for the full float64 domain.
type FloatItem struct {
	*Item
}

// NewFloatItem attaches a float-typed item to parent.
func NewFloatItem(parent Container, name string) *FloatItem {
	return &FloatItem{Item: NewItem(parent, name)}
}

// Float parses the raw stored value.
func (it *FloatItem) Float() (float64, error) {
	raw := it.Value()
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, coercionError(it.Name(), raw, err)
		}
		return f, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, coercionError(it.Name(), raw, err)
		}
		return f, nil
	default:
		return 0, coercionError(it.Name(), raw, fmt.Errorf("unsupported raw type %T", raw))
	}
}

// SetFloat formats f and stores it through the delegation chain.
func (it *FloatItem) SetFloat(f float64) {
	it.SetValue(strconv.FormatFloat(f, 'g', -1, 64))
}
