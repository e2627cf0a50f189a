package people

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// personFields is the on-disk layout of the known properties, in file order.
type personFields struct {
	Surname  string   `json:"surname"`
	Name     string   `json:"name"`
	Zodiac   *string  `json:"zodiac,omitempty"`
	Birthday Birthday `json:"birthday"`
}

var knownFields = []string{"surname", "name", "zodiac", "birthday"}

// UnmarshalJSON decodes the known properties and keeps the rest in Extra.
func (p *Person) UnmarshalJSON(data []byte) error {
	var f personFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownFields {
		delete(all, k)
	}

	*p = Person{
		Surname:  f.Surname,
		Name:     f.Name,
		Zodiac:   f.Zodiac,
		Birthday: f.Birthday,
	}
	if len(all) > 0 {
		p.Extra = all
	}
	return nil
}

// MarshalJSON writes the known properties first, then Extra sorted by key.
// Nothing is HTML-escaped.
func (p Person) MarshalJSON() ([]byte, error) {
	out, err := encodeRaw(personFields{
		Surname:  p.Surname,
		Name:     p.Name,
		Zodiac:   p.Zodiac,
		Birthday: p.Birthday,
	})
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return out, nil
	}

	// personFields always has surname, so the object is never empty.
	out = out[:len(out)-1]
	for _, k := range slices.Sorted(maps.Keys(p.Extra)) {
		key, err := encodeRaw(k)
		if err != nil {
			return nil, err
		}
		out = append(out, ',')
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, p.Extra[k]...)
	}
	return append(out, '}'), nil
}

func encodeRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
