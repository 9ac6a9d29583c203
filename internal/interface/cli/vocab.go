package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newProjectsCmd creates the 'projects' command
func newProjectsCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the unique project names used in the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}
			for _, project := range repo.AllProjects() {
				cmd.Println(project)
			}
			return nil
		},
	}
}

// newTagsCmd creates the 'tags' command
func newTagsCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the unique tags used in the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(fs, *filePath)
			if err != nil {
				return err
			}
			for _, tag := range repo.AllTags() {
				cmd.Println(tag)
			}
			return nil
		},
	}
}
