package cms_dto

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Row is one record of a CMS collection. Field values are schemaless on the
// wire; callers go through the typed accessors and map to domain models once
// at the service boundary.
type Row struct {
	ID     string           `json:"id"`
	Fields map[string]Field `json:"fields"`
}

// Field wraps a raw field value. The accessors fail when the stored
// representation is not the expected kind.
type Field struct {
	raw json.RawMessage
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.raw = append(f.raw[:0], data...)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if f.raw == nil {
		return []byte("null"), nil
	}
	return f.raw, nil
}

func NewTextField(value string) Field {
	raw, _ := json.Marshal(value)
	return Field{raw: raw}
}

func NewNumberField(value float64) Field {
	raw, _ := json.Marshal(value)
	return Field{raw: raw}
}

func (f Field) AsText() (string, error) {
	var s string
	if err := json.Unmarshal(f.raw, &s); err != nil {
		return "", fmt.Errorf("field is not text: %w", err)
	}
	return s, nil
}

func (f Field) AsNumber() (float64, error) {
	var n float64
	if err := json.Unmarshal(f.raw, &n); err != nil {
		return 0, fmt.Errorf("field is not a number: %w", err)
	}
	return n, nil
}

// Decode unmarshals a structured field value, such as a recurrence rule object.
func (f Field) Decode(v interface{}) error {
	return json.Unmarshal(f.raw, v)
}
