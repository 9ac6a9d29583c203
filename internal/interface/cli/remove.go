package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newRemoveCmd creates the 'rm' command
func newRemoveCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <line-number>",
		Short: "Remove the item at the given line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid line number %q", args[0])
			}

			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}

			lines := repo.Lines()
			if index < 0 || index >= len(lines) {
				return fmt.Errorf("line %d does not exist", index)
			}

			it := lines[index].Item()
			if it == nil {
				return fmt.Errorf("line %d is not a todo or header", index)
			}

			if err := repo.RemoveItem(it.ID()); err != nil {
				return err
			}
			if err := repo.SaveFile(); err != nil {
				return err
			}

			Info("removed item %s", it.ID())
			return nil
		},
	}
}
