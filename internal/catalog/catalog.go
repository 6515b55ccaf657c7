// Package catalog lists the metric fields queried from the tracker and their column labels.
package catalog

import (
	"errors"
	"fmt"
)

// Field is one queryable metric and the header it is displayed under.
type Field struct {
	ID    string
	Label string
}

// Catalog is an ordered, immutable set of metric fields.
// Field order is the column order of every metrics table.
type Catalog struct {
	fields []Field
	labels map[string]string
}

var defaultFields = []Field{
	{ID: "__complete-latency", Label: "complete-latency"},
	{ID: "__execute-latency", Label: "execute-latency"},
	{ID: "__process-latency", Label: "process-latency"},
	{ID: "__jvm-uptime-secs", Label: "jvm-uptime-secs"},
	{ID: "__jvm-process-cpu-load", Label: "jvm-process-cpu-load"},
	{ID: "__jvm-memory-used-mb", Label: "jvm-memory-used-mb"},
	{ID: "__emit-count/default", Label: "emit-count"},
	{ID: "__execute-count/default", Label: "execute-count"},
	{ID: "__ack-count/default", Label: "ack-count"},
	{ID: "__fail-count/default", Label: "fail-count"},
}

// Default returns the catalog of metrics shown by the spouts and bolts commands.
func Default() Catalog {
	c, err := New(defaultFields...)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from fields in display order.
func New(fields ...Field) (Catalog, error) {
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.ID == "" {
			return Catalog{}, errors.New("catalog field with empty id")
		}
		if _, dup := labels[f.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate catalog field %q", f.ID)
		}
		labels[f.ID] = f.Label
	}
	return Catalog{fields: append([]Field(nil), fields...), labels: labels}, nil
}

// QueryFields returns the field ids in catalog order.
func (c Catalog) QueryFields() []string {
	ids := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		ids = append(ids, f.ID)
	}
	return ids
}

// DisplayName returns the column label for id, or id itself when it is not catalogued.
func (c Catalog) DisplayName(id string) string {
	if l, ok := c.labels[id]; ok {
		return l
	}
	return id
}
