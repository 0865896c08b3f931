package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmesiti/hypercubes/alloc"
	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/indexing"
	"github.com/mmesiti/hypercubes/levels"
	"github.com/mmesiti/hypercubes/predicate"
)

func (a *app) treeCmd() *cobra.Command {
	depth := 3
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the decomposition tree",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			root, _, err := a.build()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, builder.Dump(root, depth))
			return err
		},
	}
	cmd.Flags().IntVar(&depth, "depth", depth, "number of levels to print")

	return cmd
}

func (a *app) indexCmd() *cobra.Command {
	var ghosts bool
	cmd := &cobra.Command{
		Use:   "index X...",
		Short: "Print the index tuple of a coordinate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			root, _, err := a.build()
			if err != nil {
				return err
			}
			if ghosts {
				for _, p := range indexing.AllAddresses(root, xs) {
					fmt.Fprintf(a.out, "%v ghosts=%d\n", p.Indices(), p.Ghosts)
				}
				return nil
			}
			idx, err := indexing.IndexPath(root, xs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, idx)
			return err
		},
	}
	cmd.Flags().BoolVar(&ghosts, "ghosts", false, "list every address including ghost copies")

	return cmd
}

func (a *app) coordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coord I...",
		Short: "Print the coordinate of an index tuple",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			idx, err := parseInts(args)
			if err != nil {
				return err
			}
			root, _, err := a.build()
			if err != nil {
				return err
			}
			xs, err := indexing.Coordinate(root, idx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, xs)
			return err
		},
	}
}

func (a *app) sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes [I...]",
		Short: "Print the extent of the block addressed by an index prefix",
		RunE: func(_ *cobra.Command, args []string) error {
			idx, err := parseInts(args)
			if err != nil {
				return err
			}
			root, _, err := a.build()
			if err != nil {
				return err
			}
			sizes, err := indexing.Sizes(root, idx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "sizes %v\n", sizes)
			if lim, err := indexing.Limits(root, idx); err == nil {
				fmt.Fprintf(a.out, "limits %v\n", lim)
			}
			return nil
		},
	}
}

func (a *app) iterateCmd() *cobra.Command {
	var (
		haloAtMost = -1
		rank       []int
		limit      = 10
	)
	cmd := &cobra.Command{
		Use:   "iterate",
		Short: "Print the allocation order of the stored blocks",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			root, l, err := a.build()
			if err != nil {
				return err
			}
			var preds []predicate.Func
			if haloAtMost >= 0 {
				preds = append(preds, predicate.HaloAtMost(l.Rules, haloAtMost))
			}
			if len(rank) > 0 {
				preds = append(preds, predicate.Rank(l.Rules, rank, nil))
			}
			st := alloc.SizeTree(root, predicate.Bind(predicate.And(preds...)))
			fmt.Fprintf(a.out, "total %d\n", alloc.Total(st))

			n := 0
			for idx := range alloc.All(st) {
				if limit >= 0 && n >= limit {
					break
				}
				fmt.Fprintf(a.out, "%d %v\n", n, idx)
				n++
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&haloAtMost, "halo-at-most", haloAtMost, "keep blocks in the halo of at most this many axes (-1: all)")
	f.IntSliceVar(&rank, "rank", nil, "keep only this rank, one index per rank level")
	f.IntVar(&limit, "limit", limit, "number of tuples to print (-1: all)")

	return cmd
}

func (a *app) depsCmd() *cobra.Command {
	var first []int
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Analyse which levels depend on each other",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			root, l, err := a.build()
			if err != nil {
				return err
			}
			m := levels.DependencyMatrix(levels.MaxIndexTree(root))
			fmt.Fprintln(a.out, m)
			deps := levels.MustComeAfter(m)
			for lvl, ds := range deps {
				fmt.Fprintf(a.out, "level %d (%s): after %v\n", lvl, l.Rules[lvl].Name, ds)
			}
			order, err := levels.TopologicalOrder(deps, first...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "order %v\n", order)
			return err
		},
	}
	cmd.Flags().IntSliceVar(&first, "first", nil, "levels to lift as high as dependencies allow")

	return cmd
}
