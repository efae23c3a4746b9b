package main

import (
	"os"

	"hotmart-post-generator/cmd/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
