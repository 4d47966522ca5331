package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SpecValue is a specification value: either a single string or a list of strings.
type SpecValue struct {
	Text string
	List []string
}

// Text builds a single-string specification value.
func Text(s string) SpecValue {
	return SpecValue{Text: s}
}

// List builds a list specification value.
func List(items ...string) SpecValue {
	return SpecValue{List: append([]string{}, items...)}
}

// IsList reports whether the value holds a list.
func (v SpecValue) IsList() bool {
	return v.List != nil
}

// String flattens the value; lists are joined with ", ".
func (v SpecValue) String() string {
	if v.IsList() {
		return strings.Join(v.List, ", ")
	}
	return v.Text
}

func (v SpecValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *SpecValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("invalid specification list: %w", err)
		}
		if list == nil {
			list = []string{}
		}
		*v = SpecValue{List: list}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("invalid specification value: %s", string(data))
	}
	*v = SpecValue{Text: text}
	return nil
}

// Specifications is an open mapping of specification names to values.
type Specifications map[string]SpecValue

// Clone returns a deep copy. A nil map stays nil.
func (s Specifications) Clone() Specifications {
	if s == nil {
		return nil
	}
	out := make(Specifications, len(s))
	for k, v := range s {
		if v.IsList() {
			v.List = append([]string{}, v.List...)
		}
		out[k] = v
	}
	return out
}

// Flatten renders every value as text, joining lists with ", ".
func (s Specifications) Flatten() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = v.String()
	}
	return out
}
