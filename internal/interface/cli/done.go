package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

// newDoneCmd creates the 'done' command
func newDoneCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "done <line-number>",
		Short: "Mark the todo at the given line as completed",
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

			todo, ok := lines[index].Item().(*item.Todo)
			if !ok {
				return fmt.Errorf("line %d is not a todo", index)
			}
			if todo.IsCompleted() {
				Warn("line %d is already completed", index)
				return nil
			}

			now := time.Now()
			todo.Complete(&now)
			if err := repo.UpdateItem(todo.ID(), todo); err != nil {
				return err
			}
			if err := repo.SaveFile(); err != nil {
				return err
			}

			cmd.Println(todo.Serialize())
			return nil
		},
	}
}
