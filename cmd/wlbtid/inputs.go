package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/wlbtid/calculator/internal/config"
	"github.com/wlbtid/calculator/internal/output"
	"github.com/wlbtid/calculator/internal/store"
)

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example inputs file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newInputsCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "Show, save or reset the stored inputs",
	}
	cmd.AddCommand(newInputsShowCmd(g), newInputsSaveCmd(g), newInputsResetCmd(g))
	return cmd
}

func parseGroups(args []string) ([]store.Group, error) {
	if len(args) == 0 {
		return store.Groups, nil
	}
	groups := make([]store.Group, 0, len(args))
	for _, a := range args {
		grp, err := store.ParseGroup(a)
		if err != nil {
			return nil, err
		}
		groups = append(groups, grp)
	}
	return groups, nil
}

func newInputsShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [group]",
		Short: "Print the effective inputs as JSON (profile, wholelife, btid)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := g.openStore(g.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			cfg, err := st.Load()
			if err != nil {
				return err
			}
			var v any = cfg
			if len(args) == 1 {
				grp, err := store.ParseGroup(args[0])
				if err != nil {
					return err
				}
				if v, err = store.Section(grp, cfg); err != nil {
					return err
				}
			}
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newInputsSaveCmd(g *globalOptions) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "save [group...]",
		Short: "Store inputs from a YAML file (all groups unless named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := parseGroups(args)
			if err != nil {
				return err
			}
			logger := g.logger(cmd.ErrOrStderr())
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			st, err := g.openStore(logger)
			if err != nil {
				return err
			}
			for _, grp := range groups {
				if err := st.Save(grp, cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", grp.Key())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML inputs file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newInputsResetCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [group...]",
		Short: "Remove stored inputs so the defaults apply (all groups unless named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := parseGroups(args)
			if err != nil {
				return err
			}
			st, err := g.openStore(g.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if err := st.Reset(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All inputs reset to defaults")
				return nil
			}
			for _, grp := range groups {
				if err := st.Remove(grp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", grp.Key())
			}
			return nil
		},
	}
}
