// Topology location and physical plan types shared by the tracker client and views.
package topology

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocation is returned when a cluster/role/environment string cannot be parsed.
var ErrInvalidLocation = errors.New("invalid topology location")

// Location identifies one topology instance on a tracker.
type Location struct {
	Cluster     string
	Role        string
	Environment string
	Topology    string
}

// ParseLocation builds a Location from "cluster/role/environment" and a topology name.
func ParseLocation(clusterRoleEnv, topologyName string) (Location, error) {
	parts := strings.Split(clusterRoleEnv, "/")
	if len(parts) != 3 {
		return Location{}, fmt.Errorf("%w: %q must be cluster/role/environment", ErrInvalidLocation, clusterRoleEnv)
	}
	for _, p := range parts {
		if p == "" {
			return Location{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidLocation, clusterRoleEnv)
		}
	}
	if topologyName == "" {
		return Location{}, fmt.Errorf("%w: topology name is empty", ErrInvalidLocation)
	}
	return Location{
		Cluster:     parts[0],
		Role:        parts[1],
		Environment: parts[2],
		Topology:    topologyName,
	}, nil
}

func (l Location) String() string {
	return l.Cluster + "/" + l.Role + "/" + l.Environment + "/" + l.Topology
}
