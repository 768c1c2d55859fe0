package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/binary"
	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/config"
	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/finder"
	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/platform"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	searchPath string
	configPath string
	verbose    bool

	// detector is nil outside tests
	detector platform.Detector
}

func (o *rootOptions) platformDetector() platform.Detector {
	if o.detector != nil {
		return o.detector
	}
	return platform.NewDetector()
}

// setup loads the config and builds a finder from it and the flags.
func (o *rootOptions) setup(ctx context.Context, stderr io.Writer) (*finder.Finder, *config.Config, error) {
	detector := o.platformDetector()

	cfg, path, err := config.NewParser(detector).Load(ctx, o.configPath)
	if err != nil {
		return nil, nil, errors.New(config.FormatError(err, o.verbose))
	}

	level := cfg.LogLevel
	if o.verbose {
		level = config.LogLevelDebug
	}
	logger := newLogger(stderr, level)
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	extra, err := cfg.ResolvedSearchPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve search paths: %w", err)
	}

	f := finder.New(
		finder.WithSearchPath(o.searchPath),
		finder.WithExtraPaths(extra...),
		finder.WithDetector(detector),
		finder.WithLogger(logger),
	)
	return f, cfg, nil
}

// newRootCommand builds the whichrosetta command tree. A nil detector uses
// the real host platform.
func newRootCommand(detector platform.Detector) *cobra.Command {
	opts := &rootOptions{detector: detector}
	var (
		all    bool
		format outputFormat
	)

	cmd := &cobra.Command{
		Use:   "whichrosetta [binary-name]",
		Short: "Locate Rosetta binaries on disk",
		Long: `whichrosetta prints the path of a Rosetta binary built for this machine.

Binaries are searched for, in order, in:
  $ROSETTA_BIN
  $ROSETTA3/bin
  $ROSETTA/main/source/bin
  the directory given with --path
  search_paths from the config file

The binary name defaults to rosetta_scripts, or to "binary" in the config file.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, cfg, err := opts.setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			name := cfg.Binary
			if len(args) == 1 {
				name = args[0]
			}

			var found []binary.Descriptor
			if all {
				found, err = f.FindAll(cmd.Context(), name)
			} else {
				var d binary.Descriptor
				d, err = f.FindBinary(cmd.Context(), name)
				found = []binary.Descriptor{d}
			}
			if err != nil {
				return err
			}

			return printDescriptors(cmd.OutOrStdout(), found, all, format)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.searchPath, "path", "", "additional directory to search")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rosettafinder/config.lua)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the search to stderr")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match instead of the first")
	cmd.Flags().BoolVar(&format.json, "json", false, "print matches as JSON")
	cmd.Flags().BoolVar(&format.yaml, "yaml", false, "print matches as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newSearchPathsCommand(opts))

	return cmd
}

type outputFormat struct {
	json bool
	yaml bool
}

// descriptorView is the --json and --yaml view of a binary.Descriptor.
type descriptorView struct {
	Name        string `json:"name" yaml:"name"`
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty"`
	OS          string `json:"os" yaml:"os"`
	Compiler    string `json:"compiler" yaml:"compiler"`
	ReleaseType string `json:"release_type" yaml:"release_type"`
	Dir         string `json:"dir" yaml:"dir"`
	Filename    string `json:"filename" yaml:"filename"`
	Path        string `json:"path" yaml:"path"`
}

func toView(d binary.Descriptor) descriptorView {
	return descriptorView{
		Name:        d.Name(),
		Mode:        string(d.Mode()),
		OS:          d.OS().String(),
		Compiler:    d.Compiler().String(),
		ReleaseType: d.ReleaseType().String(),
		Dir:         d.Dir(),
		Filename:    d.Filename(),
		Path:        d.Path(),
	}
}

func printDescriptors(w io.Writer, found []binary.Descriptor, asList bool, format outputFormat) error {
	if !format.json && !format.yaml {
		for _, d := range found {
			if _, err := fmt.Fprintln(w, d.Path()); err != nil {
				return err
			}
		}
		return nil
	}

	// --all always prints a list, even with one match.
	var v interface{}
	if !asList {
		v = toView(found[0])
	} else {
		views := make([]descriptorView, len(found))
		for i, d := range found {
			views[i] = toView(d)
		}
		v = views
	}

	if format.yaml {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
