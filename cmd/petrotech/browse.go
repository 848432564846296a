// cmd/petrotech/browse.go
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petrotech/petrotech/internal/config"
	"github.com/petrotech/petrotech/internal/tui"
	"github.com/petrotech/petrotech/internal/viewstate"
)

var errNoTerminal = errors.New("browse needs an interactive terminal; use search or serve instead")

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	var openFlag string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNoTerminal
			}

			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			initial := initialState(opts.cfg)
			if openFlag != "" {
				if _, ok := c.Tool(openFlag); !ok {
					return fmt.Errorf("unknown tool %q", openFlag)
				}
				initial = initial.OpenTool(openFlag)
			}

			model := tui.NewModel(c, tui.Options{
				Initial:       initial,
				MarkdownStyle: opts.cfg.Browse.MarkdownStyle,
				Logger:        opts.logger,
			})
			prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&openFlag, "open", "", "open the detail view of a tool on start")
	return cmd
}

// initialState is the view state both presentations start from.
func initialState(cfg *config.Config) viewstate.State {
	st := viewstate.New().SetSortOrder(cfg.SortOrder())
	if !cfg.Browse.ShowCategories {
		st = st.ToggleCategoryPanel()
	}
	return st
}
