package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pcdgen/cmd/pcdgen/commands"
)

const (
	cmdName = "pcdgen"

	shortDesc = "Generate source code from the Physical Constants Dictionary."
	longDesc  = `Generate source code from the Physical Constants Dictionary.

pcdgen reads the constants database (pcd.yaml) and writes a C++ header or a
Fortran 90 module declaring every constant, so that different parts of a
project, and different projects, agree on the numerical value of common
physical constants.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
