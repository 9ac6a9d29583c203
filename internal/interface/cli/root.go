// Package cli wires the todotxt commands: load the file, mutate the
// repository, save it back.
package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jwigmo/todotxt/internal/app/config"
	"github.com/jwigmo/todotxt/internal/buildinfo"
	"github.com/jwigmo/todotxt/internal/domain/repository"
	infraConfig "github.com/jwigmo/todotxt/internal/infra/config"
	"github.com/jwigmo/todotxt/internal/infra/filestore"
)

// globalConfig holds the loaded configuration for all commands
var globalConfig config.Config

// NewRoot builds the root command. All subcommands operate on the
// filesystem passed here, which makes the whole surface testable
// against an in-memory filesystem.
func NewRoot(fs afero.Fs) *cobra.Command {
	var filePath string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "todotxt",
		Short: "Manage a plain-text todo.txt task list",
		Long: `todotxt keeps a human-editable todo.txt file as a structured task list.
Lines it does not recognize are preserved byte for byte.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration before any command runs
			// Priority: settings.yml > defaults
			baseDir := ".todotxt"
			if home := os.Getenv("TODOTXT_HOME"); home != "" {
				baseDir = home
			}

			cfg, err := infraConfig.LoadSettings(fs, baseDir)
			if err != nil {
				// Continue with defaults if loading fails
				cfg = config.NewAppConfig(baseDir, "todo.txt", "warn", "default", "")
			}
			globalConfig = cfg

			if logLevel == "" {
				logLevel = cfg.StderrLevel()
			}
			InitGlobalLogger(logLevel)

			if filePath == "" {
				filePath = cfg.TodoFile()
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}

	cmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "path to the todo.txt file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "stderr log level (debug, info, warn, error)")

	cmd.AddCommand(
		newListCmd(fs, &filePath),
		newAddCmd(fs, &filePath),
		newDoneCmd(fs, &filePath),
		newRemoveCmd(fs, &filePath),
		newMoveCmd(fs, &filePath),
		newSearchCmd(fs, &filePath),
		newProjectsCmd(fs, &filePath),
		newTagsCmd(fs, &filePath),
		newInitCmd(fs, &filePath),
		newVersionCmd(),
	)
	return cmd
}

// openRepository loads the todo file into a fresh repository
func openRepository(fs afero.Fs, path string) (*repository.TodoRepository, error) {
	repo := repository.NewTodoRepository(filestore.New(fs))
	if err := repo.LoadFile(path); err != nil {
		return nil, err
	}
	Debug("loaded %d lines from %s", repo.Len(), path)
	return repo, nil
}

// newVersionCmd creates the 'version' command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("todotxt %s\n", buildinfo.GetVersion())
			return nil
		},
	}
}
