package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jwigmo/todotxt/internal/infra/persistence/file"
)

// sampleContent seeds a new todo file with a small worked example
const sampleContent = `# Work
(A) Review Q4 budget proposal +Work @urgent @finance
Read design documentation +Work
Schedule team meeting +Work @meetings

# Personal
(B) Buy groceries for the week +Personal @shopping note:"Milk, eggs, bread"
Water the plants +Home
Call mom +Personal @family
`

// newInitCmd creates the 'init' command
func newInitCmd(fs afero.Fs, filePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter todo file",
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := afero.Exists(fs, *filePath)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%s already exists", *filePath)
			}

			if err := file.WriteAtomic(fs, *filePath, []byte(sampleContent)); err != nil {
				return err
			}
			cmd.Printf("created %s\n", *filePath)
			return nil
		},
	}
}
