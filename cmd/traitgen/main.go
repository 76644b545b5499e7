package main

import (
	"traitgen/cmd/traitgen/cmd"
)

func main() {
	cmd.Execute()
}
