package main

import (
	"github.com/spf13/cobra"

	"heron-explorer/internal/render"
	"heron-explorer/internal/topology"
)

// newComponentsCmd builds the spouts-metric or bolts-metric command.
func newComponentsCmd(a *app, kind topology.ComponentKind) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   string(kind) + "s-metric cluster/role/env topology-name",
		Short: "Display info of a topology's " + string(kind) + "s metrics",
		Long: "Prints one metrics table per " + string(kind) + " of the topology, with a row per instance. " +
			"--" + string(kind) + " narrows the output to a single " + string(kind) + ".",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := topology.ParseLocation(args[0], args[1])
			if err != nil {
				return a.fail(failure(err), err)
			}
			views, err := a.builder().Components(a.context(cmd), kind, loc, name)
			if err != nil {
				return a.fail(failure(err), err)
			}
			if a.interactive {
				return a.browse(render.ComponentPages(views))
			}
			r, err := a.renderer()
			if err != nil {
				return a.fail("invalid output format", err)
			}
			return r.Components(a.out, views)
		},
	}
	cmd.Flags().StringVar(&name, string(kind), "", "Name of the "+string(kind)+" to show")
	return cmd
}
