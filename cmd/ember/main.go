// Package main provides the Ember framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/tensor"
)

// Version information (set at build time).
var version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ember",
		Short:         "Ember - nested tensor literals for Go",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDemoCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Ember %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a few literals and materialize them on the CPU backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend := cpu.New()
			out := cmd.OutOrStdout()

			nested := tensor.MustList(
				tensor.MustList(tensor.ScalarOf[int32](1), tensor.ScalarOf[int32](2)),
				tensor.MustList(tensor.ScalarOf[int32](3), tensor.ScalarOf[int32](4)),
			)
			flat := tensor.Flat([]float32{0.5, 1.5, 2.5})
			half := tensor.MustList(tensor.Float16Scalar(1.0), tensor.Float16Scalar(0.25))

			for _, lit := range []tensor.Literal{nested, flat, half} {
				raw, err := lit.Build(backend)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s -> %s\n", lit, raw)
			}
			return nil
		},
	}
}
