package main

import (
	"os"

	"github.com/an-ttt/matrix-org-olm/cmd/olmvectors/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
