package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/jwigmo/todotxt/internal/domain/parser"
)

// newAddCmd creates the 'add' command
func newAddCmd(fs afero.Fs, filePath *string) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "add <line>",
		Short: "Add a todo or header line to the file",
		Long: `Add parses its argument with the same grammar used for the file itself,
so priorities, projects, tags, due dates, urls and notes are recognized:

  todotxt add '(A) Buy milk +Home @shopping due:2025-01-01'
  todotxt add '# Personal'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Normalize user input to NFC so the stored text is stable
			// regardless of how the terminal composed it.
			text := norm.NFC.String(strings.Join(args, " "))

			it := parser.DefaultChain().ParseLine(text)
			if it == nil {
				return fmt.Errorf("%q is not a recognizable todo or header line", text)
			}

			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}

			if at >= 0 {
				repo.AddItemAt(it, at)
			} else {
				repo.AddItem(it)
			}
			if err := repo.SaveFile(); err != nil {
				return err
			}

			Info("added item %s", it.ID())
			cmd.Println(it.Serialize())
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", -1, "insert at this line index instead of appending")
	return cmd
}
