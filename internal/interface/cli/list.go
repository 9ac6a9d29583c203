package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jwigmo/todotxt/internal/domain/service/search"
)

// newListCmd creates the 'list' command
func newListCmd(fs afero.Fs, filePath *string) *cobra.Command {
	var searchText string
	var itemsOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lines of the todo file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}

			if itemsOnly || searchText != "" {
				items := search.Filter(repo.Items(), searchText)
				for _, it := range items {
					cmd.Println(it.Serialize())
				}
				return nil
			}

			for _, l := range repo.Lines() {
				cmd.Printf("%4d  %s\n", l.Number(), l.Serialize())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchText, "search", "s", "", "only show items matching the search text")
	cmd.Flags().BoolVar(&itemsOnly, "items", false, "only show parsed items, without line numbers")
	return cmd
}
