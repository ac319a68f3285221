package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dfryer1193/blogdesk/internal/tui"
	"github.com/dfryer1193/blogdesk/shared/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// TUIOptions holds flags for the tui command.
type TUIOptions struct {
	*RootOptions
	LogFile string
	Style   string
}

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TUIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Manage posts in the terminal",
		Long: `Open the terminal UI: a post table with a preview of the highlighted
post and forms to add, delete and modify posts.

Logs are discarded unless --log-file is set.

Example:
  blogdesk tui
  blogdesk tui --log-file blogdesk.log --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = io.Discard
			if opts.LogFile != "" {
				f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := logging.Setup(w, opts.LogLevel, opts.LogFormat); err != nil {
				return err
			}

			model := tui.NewModel(newPostService(), opts.Style)
			return runTUI(cmd.Context(), model, tea.WithAltScreen())
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	cmd.Flags().StringVar(&opts.Style, "style", "auto", "glamour style for the post preview (auto|dark|light|notty)")

	return cmd
}

func runTUI(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))

	log.Info().Msg("Starting terminal UI")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	log.Info().Msg("Terminal UI stopped")
	return nil
}
