package main

import (
	"os"

	"github.com/orcdkestrator/cdklocal/cmd"
)

func main() {
	if err := cmd.Execute(cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
