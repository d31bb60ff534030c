package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the duext command. The exit code of the run is
// stored in *code; cobra errors (bad arguments, bad flags) are returned from
// Execute instead.
func NewRootCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	var (
		color       string
		excludes    []string
		excludeFrom string
		byExt       bool
		jsonOut     bool
		contOnErr   bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "duext [flags] <directory>",
		Short: "Report the regular files below a directory, or their disk usage by extension",
		Long: `duext walks a directory tree depth-first and prints the path of every
regular file it finds, one per line. Symbolic links are never followed.

With --by-extension the file sizes are summed per extension instead
(".gz", ".bz2" and ".xz" count as the extension they compress) and a
table of the largest extensions is printed.

The maximum path length the walk can represent is set with path_capacity
in the config file (DUEXT_CONFIG_PATH or ~/.duext.yaml).`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()

			fc, err := LoadFileConfig(ConfigPath())
			if err != nil {
				return err
			}
			if err := fc.Apply(&cfg); err != nil {
				return err
			}

			cfg.Root = args[0]
			cfg.ByExtension = byExt || jsonOut
			cfg.JSONOutput = jsonOut
			cfg.Verbose = verbose
			cfg.Excludes = append(cfg.Excludes, excludes...)
			if contOnErr {
				cfg.ContinueOnError = true
			}
			if excludeFrom != "" {
				cfg.ExcludeFrom = excludeFrom
			}
			if cmd.Flags().Changed("color") {
				mode, err := ParseColorMode(color)
				if err != nil {
					return err
				}
				cfg.Color = mode
			}

			*code = Run(cfg, stdout, stderr)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&byExt, "by-extension", "e", false, "sum file sizes per extension instead of listing paths")
	flags.BoolVar(&jsonOut, "json", false, "print the extension report as JSON (implies --by-extension)")
	flags.StringArrayVar(&excludes, "exclude", nil, "gitignore-style pattern to skip, relative to the root (repeatable)")
	flags.StringVar(&excludeFrom, "exclude-from", "", "read exclude patterns from a .gitignore-format file")
	flags.BoolVar(&contOnErr, "continue-on-error", false, "skip subtrees that cannot be walked instead of failing")
	flags.StringVar(&color, "color", "auto", "color the report: auto, always or never")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := NewRootCommand(stdout, stderr, &code)
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return ExitUsage
	}
	return code
}
