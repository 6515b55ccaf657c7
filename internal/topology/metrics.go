package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Sample is one metric value reported for an instance.
type Sample struct {
	Instance string
	Value    string
}

// FieldSamples holds every instance sample reported for one metric field.
type FieldSamples struct {
	Field   string
	Samples []Sample
}

// MetricsResult is the field -> instance -> value payload of a metrics query.
// Both levels keep the order the tracker returned them in; a given instance
// need not appear under every field.
type MetricsResult []FieldSamples

// Has reports whether field is present in the result.
func (m MetricsResult) Has(field string) bool {
	_, ok := m.field(field)
	return ok
}

// Lookup returns the value of field for instance.
func (m MetricsResult) Lookup(field, instance string) (string, bool) {
	fs, ok := m.field(field)
	if !ok {
		return "", false
	}
	for _, s := range fs.Samples {
		if s.Instance == instance {
			return s.Value, true
		}
	}
	return "", false
}

func (m MetricsResult) field(field string) (FieldSamples, bool) {
	for _, fs := range m {
		if fs.Field == field {
			return fs, true
		}
	}
	return FieldSamples{}, false
}

// UnmarshalJSON decodes the nested metrics object preserving key order.
// String values are unquoted, anything else keeps its JSON text.
func (m *MetricsResult) UnmarshalJSON(data []byte) error {
	var out MetricsResult
	err := walkObject(data, func(field string, raw json.RawMessage) error {
		fs := FieldSamples{Field: field}
		err := walkObject(raw, func(instance string, v json.RawMessage) error {
			val, err := scalarText(v)
			if err != nil {
				return fmt.Errorf("metric %q instance %q: %w", field, instance, err)
			}
			fs.Samples = append(fs.Samples, Sample{Instance: instance, Value: val})
			return nil
		})
		if err != nil {
			return err
		}
		out = append(out, fs)
		return nil
	})
	if err != nil {
		return err
	}
	*m = out
	return nil
}

func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
		return "", fmt.Errorf("expected scalar value, got %s", raw)
	}
	return string(raw), nil
}
