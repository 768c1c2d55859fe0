package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newSearchPathsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search-paths",
		Short: "Print the directories searched, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := opts.setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styles := newStatusStyles(lipgloss.NewRenderer(out))
			for _, dir := range f.CandidateDirectories() {
				fmt.Fprintf(out, "%s\t(%s)\n", dir, styles.render(dirStatus(dir)))
			}
			return nil
		},
	}
}

const (
	statusOK      = "ok"
	statusMissing = "missing"
	statusNotDir  = "not a directory"
)

func dirStatus(dir string) string {
	info, err := os.Stat(dir)
	switch {
	case err != nil:
		return statusMissing
	case !info.IsDir():
		return statusNotDir
	default:
		return statusOK
	}
}

// statusStyles colors directory status words. Colors are dropped when the
// renderer's writer is not a terminal.
type statusStyles struct {
	ok, bad lipgloss.Style
}

func newStatusStyles(r *lipgloss.Renderer) statusStyles {
	return statusStyles{
		ok:  r.NewStyle().Foreground(lipgloss.Color("2")),
		bad: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s statusStyles) render(status string) string {
	if status == statusOK {
		return s.ok.Render(status)
	}
	return s.bad.Render(status)
}
