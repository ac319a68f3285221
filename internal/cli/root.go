package cli

import (
	"fmt"
	"slices"

	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/dfryer1193/blogdesk/blog/persistence"
	"github.com/dfryer1193/blogdesk/shared/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel  string
	LogFormat string

	config *config.Config
}

// ValidLogFormats defines the allowed log formats.
var ValidLogFormats = []string{"console", "json"}

// NewRootCommand creates the root command. Flag defaults come from the environment.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()
	opts := &RootOptions{config: cfg}

	cmd := &cobra.Command{
		Use:   "blogdesk",
		Short: "Manage blog posts from the browser or the terminal",
		Long: `blogdesk keeps a list of blog posts in memory and lets you list,
filter, add, delete and modify them, either through a web UI with a JSON API
or through a terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidLogFormats, opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}
			if _, err := zerolog.ParseLevel(opts.LogLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", cfg.LogFormat, "log format (console|json)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))

	return cmd
}

// newPostService wires the in-memory store, seeded with the sample posts.
func newPostService() *application.PostService {
	repo := persistence.NewPostRepository(domain.SamplePosts())
	return application.NewPostService(repo, application.NewMarkdownRenderer())
}
