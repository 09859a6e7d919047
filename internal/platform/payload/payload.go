// Package payload agrupa los tipos de entrada JSON compartidos por los handlers:
// ids que llegan como número o string y fechas ISO-8601 con o sin zona.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID acepta 12 o "12". El cliente web manda los <select> como string.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", s)
		}
		*id = ID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s", string(b))
	}
	*id = ID(n)
	return nil
}

// Int64 devuelve nil si id es nil.
func (id *ID) Int64() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

// ParseID interpreta un {id} de la URL. Solo enteros positivos.
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return n, nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime acepta ISO-8601. Sin zona se interpreta como UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}

// OptionalTime: nil o "" => nil.
func OptionalTime(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Field indica si una clave vino en el JSON y su valor crudo.
// Sirve para distinguir "no enviado" de null en PATCH.
type Field struct {
	Present bool
	Raw     json.RawMessage
}

func (f Field) IsNull() bool {
	return f.Present && string(bytes.TrimSpace(f.Raw)) == "null"
}

// Fields decodifica un objeto JSON a mapa de claves presentes.
func Fields(b []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	return raw, nil
}

// Lookup arma un Field a partir del mapa crudo.
func Lookup(raw map[string]json.RawMessage, key string) Field {
	v, ok := raw[key]
	return Field{Present: ok, Raw: v}
}
