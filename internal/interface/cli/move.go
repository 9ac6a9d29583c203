package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newMoveCmd creates the 'mv' command
func newMoveCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move a line to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid line number %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line number %q", args[1])
			}

			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}

			if err := repo.MoveItem(from, to); err != nil {
				return err
			}
			return repo.SaveFile()
		},
	}
}
