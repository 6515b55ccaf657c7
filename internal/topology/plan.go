package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ComponentKind selects spouts or bolts from a physical plan.
type ComponentKind string

const (
	Spout ComponentKind = "spout"
	Bolt  ComponentKind = "bolt"
)

// ContainerInfo describes one stream manager and the instances scheduled on it.
type ContainerInfo struct {
	Host        string   `json:"host"`
	Port        int      `json:"port"`
	PID         int      `json:"pid"`
	InstanceIDs []string `json:"instance_ids"`
}

// Component is one spout or bolt with its instance ids.
type Component struct {
	Name        string
	InstanceIDs []string
}

// Components keeps spouts or bolts in the order the tracker listed them.
type Components []Component

// UnmarshalJSON decodes a name -> instance id list object without losing key order.
func (c *Components) UnmarshalJSON(data []byte) error {
	var out Components
	err := walkObject(data, func(key string, raw json.RawMessage) error {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("component %q: %w", key, err)
		}
		out = append(out, Component{Name: key, InstanceIDs: ids})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// Names returns the component names in plan order.
func (c Components) Names() []string {
	names := make([]string, 0, len(c))
	for _, comp := range c {
		names = append(names, comp.Name)
	}
	return names
}

// PhysicalPlan is the tracker's point-in-time scheduling snapshot of a topology.
type PhysicalPlan struct {
	Stmgrs map[string]ContainerInfo `json:"stmgrs"`
	Spouts Components               `json:"spouts"`
	Bolts  Components               `json:"bolts"`
}

// Components returns the spouts or bolts of the plan.
func (p *PhysicalPlan) Components(kind ComponentKind) Components {
	switch kind {
	case Spout:
		return p.Spouts
	case Bolt:
		return p.Bolts
	}
	return nil
}

// walkObject calls fn for every member of a JSON object in document order.
// A JSON null is treated as an empty object.
func walkObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
