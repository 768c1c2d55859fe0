package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/binary"
)

// newParseCommand checks filenames against the naming convention without
// touching the filesystem.
func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <filename>...",
		Short: "Decompose binary filenames into their fields",
		Example: `  whichrosetta parse rosetta_scripts.mpi.linuxgccrelease
  whichrosetta parse /opt/rosetta/bin/relax.macosclangdebug`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMODE\tOS\tCOMPILER\tRELEASE\tCANONICAL")

			failed := 0
			for _, arg := range args {
				d, err := binary.Parse(filepath.Dir(arg), filepath.Base(arg))
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.Name(), d.Mode(), d.OS(), d.Compiler(), d.ReleaseType(), d.Filename())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d filenames are not Rosetta binaries", failed, len(args))
			}
			return nil
		},
	}
}
