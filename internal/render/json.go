package render

import (
	"encoding/json"
	"io"

	"heron-explorer/internal/view"
)

// JSONRenderer writes tables as indented JSON documents.
type JSONRenderer struct{}

// Components writes all component views as one JSON array.
func (r *JSONRenderer) Components(w io.Writer, views []view.ComponentView) error {
	if views == nil {
		views = []view.ComponentView{}
	}
	return encode(w, views)
}

// Table writes t as a JSON object with header and rows.
func (r *JSONRenderer) Table(w io.Writer, t view.Table) error {
	if t.Rows == nil {
		t.Rows = [][]string{}
	}
	return encode(w, t)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
