package view

import (
	"context"
	"slices"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"heron-explorer/internal/catalog"
	"heron-explorer/internal/logging"
	"heron-explorer/internal/topology"
)

// Tracker is the subset of the tracker API the views need.
type Tracker interface {
	TopologyInfo(ctx context.Context, loc topology.Location) (*topology.PhysicalPlan, error)
	ComponentMetrics(ctx context.Context, loc topology.Location, component string, fields []string) (topology.MetricsResult, error)
}

// ComponentView is the metrics table of one spout or bolt.
type ComponentView struct {
	Name  string `json:"name"`
	Table Table  `json:"table"`
}

// ContainerHeader is the header of the containers table.
var ContainerHeader = []string{"container", "host", "port", "pid", "#bolt", "#spout", "#instance"}

// Builder builds component and container views from tracker data.
type Builder struct {
	tracker     Tracker
	catalog     catalog.Catalog
	concurrency int
}

// NewBuilder creates a Builder. concurrency bounds the number of metric
// queries in flight; values below 1 mean one at a time.
func NewBuilder(t Tracker, c catalog.Catalog, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Builder{tracker: t, catalog: c, concurrency: concurrency}
}

// Components returns one metrics view per spout or bolt of the topology, in
// the order the tracker lists them. A non-empty filter narrows the result to
// that component. Any tracker failure discards every view built so far.
func (b *Builder) Components(ctx context.Context, kind topology.ComponentKind, loc topology.Location, filter string) ([]ComponentView, error) {
	log := logging.FromContext(ctx)
	plan, err := b.tracker.TopologyInfo(ctx, loc)
	if err != nil {
		return nil, err
	}
	names := plan.Components(kind).Names()
	if filter != "" {
		if !slices.Contains(names, filter) {
			return nil, &UnknownComponentError{Kind: kind, Name: filter}
		}
		names = []string{filter}
	}
	log.Debug("fetching component metrics", "topology", loc.String(), "kind", kind, "components", len(names))

	fields := b.catalog.QueryFields()
	views := make([]ComponentView, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := b.tracker.ComponentMetrics(gctx, loc, name, fields)
			if err != nil {
				return err
			}
			views[i] = ComponentView{Name: name, Table: Pivot(b.catalog, m)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// Containers returns the container summary table. index, when set, is the
// 1-based position of a container in lexical order of container names.
func (b *Builder) Containers(ctx context.Context, loc topology.Location, index *int) (Table, error) {
	plan, err := b.tracker.TopologyInfo(ctx, loc)
	if err != nil {
		return Table{}, err
	}
	bolts := instanceSet(plan.Bolts)
	spouts := instanceSet(plan.Spouts)

	names := make([]string, 0, len(plan.Stmgrs))
	for name := range plan.Stmgrs {
		names = append(names, name)
	}
	sort.Strings(names)
	logging.FromContext(ctx).Debug("building container table", "topology", loc.String(), "containers", len(names))

	first, last := 0, len(names)
	if index != nil {
		if *index < 1 || *index > len(names) {
			return Table{}, &InvalidContainerIDError{ID: *index, Count: len(names)}
		}
		first, last = *index-1, *index
	}

	rows := make([][]string, 0, last-first)
	for pos := first; pos < last; pos++ {
		c := plan.Stmgrs[names[pos]]
		rows = append(rows, []string{
			strconv.Itoa(pos + 1),
			c.Host,
			strconv.Itoa(c.Port),
			strconv.Itoa(c.PID),
			strconv.Itoa(countIn(c.InstanceIDs, bolts)),
			strconv.Itoa(countIn(c.InstanceIDs, spouts)),
			strconv.Itoa(len(c.InstanceIDs)),
		})
	}
	return Table{Header: append([]string(nil), ContainerHeader...), Rows: rows}, nil
}

func instanceSet(comps topology.Components) map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range comps {
		for _, id := range c.InstanceIDs {
			set[id] = struct{}{}
		}
	}
	return set
}

func countIn(ids []string, set map[string]struct{}) int {
	n := 0
	for _, id := range ids {
		if _, ok := set[id]; ok {
			n++
		}
	}
	return n
}
