// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pershom/cohomology"
	"github.com/katalvlaran/pershom/diagram"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel string
	logJSON  bool
}

// logger builds the engine logger on w from the root flags.
func (f *rootFlags) logger(w io.Writer) (*cohomology.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if f.logJSON {
		return cohomology.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}

	return cohomology.NewLogger(slog.NewTextHandler(w, opts)), nil
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "pcoh",
		Short: "Persistent cohomology of filtered complexes",
		Long: `pcoh computes persistence diagrams over Z/pZ with the annotation
algorithm and inspects diagram files written as "dim birth death" lines.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "log as JSON instead of text")

	root.AddCommand(newComputeCmd(flags), newInspectCmd())

	return root
}

// computeFlags override values from the job files.
type computeFlags struct {
	characteristic uint32
	minPersistence float64
	essentials     bool
	tieBreak       string
	output         string
	parallel       int
	trace          bool
	metrics        bool
}

func newComputeCmd(root *rootFlags) *cobra.Command {
	flags := &computeFlags{}
	cmd := &cobra.Command{
		Use:   "compute JOB.yaml [JOB.yaml...]",
		Short: "Compute the persistence diagram of each job file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, root, flags, args)
		},
	}
	f := cmd.Flags()
	f.Uint32VarP(&flags.characteristic, "characteristic", "p", cohomology.DefaultCharacteristic, "prime field characteristic")
	f.Float64VarP(&flags.minPersistence, "min-persistence", "m", 0, "drop finite pairs shorter than this")
	f.BoolVar(&flags.essentials, "essentials", true, "report classes that never die")
	f.StringVar(&flags.tieBreak, "tie-break", "larger-key", "which equally old class dies: larger-key or smaller-key")
	f.StringVarP(&flags.output, "output", "o", "", "write diagrams to this file instead of stdout")
	f.IntVar(&flags.parallel, "parallel", 0, "jobs computed at once (0 = all)")
	f.BoolVar(&flags.trace, "trace", false, "print OpenTelemetry spans to stderr")
	f.BoolVar(&flags.metrics, "metrics", false, "print gathered Prometheus metric families to stderr")

	return cmd
}

// applyOverrides copies explicitly set flags into job and revalidates it.
func (f *computeFlags) applyOverrides(cmd *cobra.Command, job *JobFile) error {
	set := cmd.Flags().Changed
	if set("characteristic") {
		job.Characteristic = f.characteristic
	}
	if set("min-persistence") {
		job.MinPersistence = &f.minPersistence
	}
	if set("essentials") {
		job.Essentials = &f.essentials
	}
	if set("tie-break") {
		job.TieBreak = f.tieBreak
	}

	v, err := newValidator()
	if err != nil {
		return err
	}

	return job.validate(v)
}

func runCompute(cmd *cobra.Command, root *rootFlags, flags *computeFlags, paths []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stderr := cmd.ErrOrStderr()
	logger, err := root.logger(stderr)
	if err != nil {
		return err
	}

	jobs := make([]cohomology.Job, 0, len(paths))
	for _, path := range paths {
		job, err := loadJob(path)
		if err != nil {
			return err
		}
		if err = flags.applyOverrides(cmd, job); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		jobs = append(jobs, cohomology.Job{
			Name:           job.Name,
			Build:          job.build,
			Options:        append(job.options(), cohomology.WithLogger(logger)),
			MinPersistence: job.threshold(),
		})
	}

	tel, err := setupTelemetry(stderr, flags.trace, flags.metrics)
	if err != nil {
		return err
	}
	results, err := cohomology.ComputeAll(ctx, jobs, flags.parallel)
	if err != nil {
		_ = tel.shutdown(ctx)
		return err
	}
	if err = writeResults(cmd.OutOrStdout(), flags.output, results); err != nil {
		_ = tel.shutdown(ctx)
		return err
	}
	if err = tel.writeMetrics(stderr); err != nil {
		_ = tel.shutdown(ctx)
		return err
	}

	return tel.shutdown(ctx)
}

// writeResults writes every diagram to path, or to stdout when path is
// empty. Several diagrams are separated by "# name" comment lines, which
// diagram.Read skips.
func writeResults(stdout io.Writer, path string, results []cohomology.Result) (err error) {
	w := stdout
	if path != "" {
		var file *os.File
		if file, err = os.Create(path); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}
	for _, r := range results {
		if len(results) > 1 {
			if _, err = fmt.Fprintf(w, "# %s\n", r.Name); err != nil {
				return err
			}
		}
		if _, err = r.Diagram.WriteTo(w); err != nil {
			return err
		}
	}

	return nil
}

// inspectFlags configure the inspect subcommand.
type inspectFlags struct {
	characteristic uint32
	minPersistence float64
}

func newInspectCmd() *cobra.Command {
	flags := &inspectFlags{}
	cmd := &cobra.Command{
		Use:   "inspect DIAGRAM",
		Short: `Summarise a diagram file ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, flags, args[0])
		},
	}
	cmd.Flags().Uint32VarP(&flags.characteristic, "characteristic", "p", cohomology.DefaultCharacteristic,
		"characteristic recorded on pairs read from 3-column lines")
	cmd.Flags().Float64VarP(&flags.minPersistence, "min-persistence", "m", 0, "drop finite pairs shorter than this")

	return cmd
}

func runInspect(cmd *cobra.Command, flags *inspectFlags, path string) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		defer file.Close()
		r = file
	}
	d, err := diagram.Read(r, flags.characteristic)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	if math.IsNaN(flags.minPersistence) || flags.minPersistence < 0 {
		return fmt.Errorf("inspect: %g: %w", flags.minPersistence, cohomology.ErrInvalidThreshold)
	}
	d.Filter(flags.minPersistence)

	return summarise(cmd.OutOrStdout(), d)
}

// summarise prints per-dimension counts, the longest finite bar and the
// Betti numbers of d.
func summarise(w io.Writer, d *diagram.Diagram) error {
	if _, err := fmt.Fprintf(w, "pairs: %d\n", d.Len()); err != nil {
		return err
	}
	for dim := 0; dim <= d.MaxDimension(); dim++ {
		pairs := d.InDimension(dim)
		essential, longest := 0, 0.0
		for _, p := range pairs {
			if p.IsEssential() {
				essential++
				continue
			}
			longest = max(longest, p.Persistence())
		}
		if _, err := fmt.Fprintf(w, "dim %d: pairs=%d essential=%d longest=%g\n",
			dim, len(pairs), essential, longest); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "betti: %v\n", d.Betti())

	return err
}
