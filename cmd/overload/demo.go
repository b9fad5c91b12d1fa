package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/overload"
	"github.com/aretw0/overload/pkg/scenario"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		emit  bool
		write string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in reference scenario",
		Long: `Run the built-in scenario: values 7 and 3 as trait1, "asd" as trait2,
dispatched through every valid shape of f and f_xor.
With --yaml the scenario is printed instead; with --write it is saved to a file
so it can be edited and passed to 'overload run'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := overload.New(overload.WithLogger(slog.Default()), overload.WithStrict(true))

			if emit || write != "" {
				sc := scenario.Builtin()
				if write != "" {
					if err := engine.Loader.Save(write, sc); err != nil {
						return fmt.Errorf("error writing scenario: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", write)
					return nil
				}
				data, err := engine.Loader.Serializer().Serialize(sc)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			report, err := engine.RunBuiltin(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range report.Results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-26s = %s\n", r.Op, formatArgs(r.Args), r.Got)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All OK!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&emit, "yaml", false, "Print the built-in scenario as YAML")
	cmd.Flags().StringVar(&write, "write", "", "Write the built-in scenario to a YAML file")
	return cmd
}

func formatArgs(args []scenario.Arg) string {
	out := "("
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a.Value + " as " + a.As
	}
	return out + ")"
}
