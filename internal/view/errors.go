package view

import (
	"fmt"

	"heron-explorer/internal/topology"
)

// UnknownComponentError reports a spout or bolt name absent from the physical plan.
type UnknownComponentError struct {
	Kind topology.ComponentKind
	Name string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown %s: '%s'", e.Kind, e.Name)
}

// InvalidContainerIDError reports a container index outside the sorted container list.
type InvalidContainerIDError struct {
	ID    int
	Count int
}

func (e *InvalidContainerIDError) Error() string {
	return fmt.Sprintf("invalid container id: %d (topology has %d containers)", e.ID, e.Count)
}
