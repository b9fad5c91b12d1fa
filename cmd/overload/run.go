package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/aretw0/overload"
	"github.com/aretw0/overload/pkg/core"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		asJSON bool
		watch  bool
		strict bool
		loose  bool
		state  bool
	)

	cmd := &cobra.Command{
		Use:   "run [pattern...]",
		Short: "Run scenario files",
		Long: `Run every scenario file matched by the given patterns.
Patterns support ** (e.g. "scenarios/**/*.yaml"). Each call is dispatched
through f or f_xor and compared with its expectation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := overload.New(
				overload.WithLogger(slog.Default()),
				overload.WithStrict(strict),
				overload.WithStrictYAML(!loose),
			)
			out := cmd.OutOrStdout()
			printState := func() {
				if !state {
					return
				}
				w := out
				if asJSON {
					w = cmd.ErrOrStderr()
				}
				fmt.Fprintln(w, engine.Diagram())
			}

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return engine.Watch(ctx, args, func(reports []overload.Report, err error) {
					if printErr := printReports(out, reports, asJSON); printErr != nil {
						slog.Error("failed to print reports", "error", printErr)
					}
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					}
					printState()
				})
			}

			reports, err := engine.RunFiles(cmd.Context(), args)
			if printErr := printReports(out, reports, asJSON); printErr != nil {
				return printErr
			}
			printState()
			if err != nil {
				return err
			}
			for _, r := range reports {
				if !r.OK() {
					return fmt.Errorf("scenario %q: %d call(s) failed: %w", r.Scenario, r.Failed, core.ErrMismatch)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output reports in JSON format")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when scenario files change")
	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first failing call")
	cmd.Flags().BoolVar(&loose, "loose", false, "Ignore unknown keys in scenario files")
	cmd.Flags().BoolVar(&state, "state", false, "Print engine state as a Mermaid diagram (stderr with --json)")
	return cmd
}

func printReports(w io.Writer, reports []overload.Report, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if reports == nil {
			reports = []overload.Report{}
		}
		return encoder.Encode(reports)
	}

	var errs []error
	for _, r := range reports {
		name := r.Scenario
		if r.Source != "" {
			name = fmt.Sprintf("%s (%s)", r.Scenario, r.Source)
		}
		_, err := fmt.Fprintf(w, "%s: %d passed, %d failed\n", name, r.Passed, r.Failed)
		errs = append(errs, err)
		for _, c := range r.Results {
			if c.OK {
				continue
			}
			_, err := fmt.Fprintf(w, "  call %d %s %s: got %s, want %s (%s)\n",
				c.Index, c.Op, formatArgs(c.Args), c.Got, c.Want, c.Err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
