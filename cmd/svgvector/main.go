// Command svgvector converts SVG files into the normalized vector model and
// prints it as YAML.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raykov/svgvector"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbosity  int
		autoMirror bool
		resolved   bool
	)
	cmd := &cobra.Command{
		Use:   "svgvector [flags] file.svg...",
		Short: "Convert SVG files to a vector model and print it as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("resolved") {
				opts.ForceResolvedPaths = resolved
			}
			stdr.SetVerbosity(verbosity)
			opts.Logger = stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			for _, path := range args {
				m, err := svgvector.ParseFile(path, autoMirror, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := enc.Encode(dumpModel(m)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with conversion options")
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")
	cmd.Flags().BoolVar(&autoMirror, "auto-mirror", false, "mark the model as mirrored in right to left layouts")
	cmd.Flags().BoolVar(&resolved, "resolved", false, "always write resolved path data")
	return cmd
}

func loadOptions(path string) (svgvector.Options, error) {
	if path == "" {
		return svgvector.Options{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return svgvector.Options{}, err
	}
	defer f.Close()
	opts, err := svgvector.DecodeOptions(f)
	if err != nil {
		return svgvector.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
