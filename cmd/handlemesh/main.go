package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/akhenakh/handlemesh/handle"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "handlemesh",
		Short: "Connect two faces of a mesh with a tubular handle",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				handle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log recovered geometry degeneracies to stderr")

	rootCmd.AddCommand(makeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exampleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func makeCmd() *cobra.Command {
	var out string
	var segments, twists int
	var weight, weight1, weight2 float64

	cmd := &cobra.Command{
		Use:   "make [job-file]",
		Short: "Build the handle described by a job file and write the merged mesh as OBJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := overrides{}
			if cmd.Flags().Changed("segments") {
				ov.segments = &segments
			}
			if cmd.Flags().Changed("twists") {
				ov.twists = &twists
			}
			if cmd.Flags().Changed("weight") {
				// Symmetric mode: one bulge magnitude for both ends.
				ov.weight1 = &weight
				ov.weight2 = &weight
			}
			if cmd.Flags().Changed("weight1") {
				ov.weight1 = &weight1
			}
			if cmd.Flags().Changed("weight2") {
				ov.weight2 = &weight2
			}
			return runMake(args[0], out, ov)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "handle.obj", "output OBJ path")
	cmd.Flags().IntVar(&segments, "segments", 0, "override the job's interior cross-section count")
	cmd.Flags().IntVar(&twists, "twists", 0, "override the job's twist count")
	cmd.Flags().Float64Var(&weight, "weight", 0, "override both end weights with one value")
	cmd.Flags().Float64Var(&weight1, "weight1", 0, "override the source-end weight")
	cmd.Flags().Float64Var(&weight2, "weight2", 0, "override the target-end weight")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [job-file]",
		Short: "Check a job file without writing any output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write a sample job file: a cube handle from its bottom face to a split-off top triangle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "example.json"
			if len(args) == 1 {
				path = args[0]
			}
			return runExample(path)
		},
	}
}
