package main

import (
	"github.com/spf13/cobra"

	"heron-explorer/internal/render"
	"heron-explorer/internal/topology"
)

func newContainersCmd(a *app) *cobra.Command {
	var cid int
	cmd := &cobra.Command{
		Use:   "containers cluster/role/env topology-name",
		Short: "Display info of a topology's containers metrics",
		Long: "Prints host, port, pid and instance counts of every container, numbered from 1 " +
			"in container name order. --cid selects a single container by that number.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := topology.ParseLocation(args[0], args[1])
			if err != nil {
				return a.fail(failure(err), err)
			}
			var index *int
			if cmd.Flags().Changed("cid") {
				index = &cid
			}
			tbl, err := a.builder().Containers(a.context(cmd), loc, index)
			if err != nil {
				return a.fail(failure(err), err)
			}
			if a.interactive {
				return a.browse([]render.Page{{Title: "containers", Table: tbl}})
			}
			r, err := a.renderer()
			if err != nil {
				return a.fail("invalid output format", err)
			}
			return r.Table(a.out, tbl)
		},
	}
	cmd.Flags().IntVar(&cid, "cid", 0, "Container number (1-based) to show")
	return cmd
}
