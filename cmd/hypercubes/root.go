package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/config"
	"github.com/mmesiti/hypercubes/internal/presets"
)

var presetLayouts = map[string]func() builder.Layout{
	"lattice4d": presets.Lattice4D,
	"line42":    presets.Line42,
}

// app holds the flags shared by every subcommand.
type app struct {
	layoutPath string
	preset     string
	logLevel   string

	out    io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:          "hypercubes",
		Short:        "Build and query lattice decomposition trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVar(&a.layoutPath, "layout", "", "YAML layout file (overrides --preset)")
	f.StringVar(&a.preset, "preset", "lattice4d", "built-in layout: lattice4d or line42")
	f.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.treeCmd(),
		a.indexCmd(),
		a.coordCmd(),
		a.sizesCmd(),
		a.iterateCmd(),
		a.depsCmd(),
	)

	return root
}

// layout resolves the layout selected by the flags.
func (a *app) layout() (builder.Layout, error) {
	if a.layoutPath != "" {
		l, err := config.Load(a.layoutPath)
		if err != nil {
			return builder.Layout{}, err
		}
		return l.Resolve()
	}
	mk, ok := presetLayouts[a.preset]
	if !ok {
		names := lo.Keys(presetLayouts)
		slices.Sort(names)
		return builder.Layout{}, fmt.Errorf("unknown preset %q (have %v)", a.preset, names)
	}

	return mk(), nil
}

// build compiles the selected layout.
func (a *app) build() (*builder.Node, builder.Layout, error) {
	l, err := a.layout()
	if err != nil {
		return nil, builder.Layout{}, err
	}
	root, err := builder.Build(l.Geometry, l.Rules, builder.WithLogger(a.logger))
	if err != nil {
		return nil, builder.Layout{}, err
	}

	return root, l, nil
}

// parseInts converts positional arguments into integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
