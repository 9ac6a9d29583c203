package cli

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jwigmo/todotxt/internal/domain/service/search"
)

// newSearchCmd creates the 'search' command
func newSearchCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Show items whose title, project, tags or note match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}

			matched := search.Filter(repo.Items(), strings.Join(args, " "))
			for _, it := range matched {
				cmd.Println(it.Serialize())
			}
			Debug("search matched %d of %d items", len(matched), len(repo.Items()))
			return nil
		},
	}
}
