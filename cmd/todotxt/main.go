package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/jwigmo/todotxt/internal/interface/cli"
)

func main() {
	if err := cli.NewRoot(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
