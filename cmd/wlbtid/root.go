package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/config"
	"github.com/wlbtid/calculator/internal/domain"
	"github.com/wlbtid/calculator/internal/store"
)

type globalOptions struct {
	storeDir string
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "wlbtid",
		Short:         "Whole life vs buy term and invest the difference",
		Long:          "Projects a whole life policy against term insurance plus investing the premium difference, year by year, and reports breakevens and key-age snapshots.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.storeDir, "store-dir", "", "directory holding saved inputs (default: user config dir)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newProjectCmd(opts),
		newExampleConfigCmd(),
		newInputsCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// logger writes structured logs to the command's error stream.
func (o *globalOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *globalOptions) engine(logger *slog.Logger) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.Debug = o.debug
	engine.SetLogger(calculation.NewSlogLogger(logger))
	return engine
}

func (o *globalOptions) openStore(logger *slog.Logger) (*store.Store, error) {
	dir := o.storeDir
	if dir == "" {
		var err error
		if dir, err = store.DefaultDir(); err != nil {
			return nil, err
		}
	}
	return store.New(dir, logger)
}

// loadInputs reads the YAML file when one is given, otherwise the stored inputs.
func (o *globalOptions) loadInputs(configFile string, logger *slog.Logger) (*domain.Configuration, error) {
	if configFile != "" {
		return config.NewInputParser().LoadFromFile(configFile)
	}
	st, err := o.openStore(logger)
	if err != nil {
		return nil, err
	}
	return st.Load()
}
