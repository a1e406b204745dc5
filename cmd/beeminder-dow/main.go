package main

import (
	"os"

	"beeminder-dow/cmd/beeminder-dow/commands"
)

func main() {
	os.Exit(commands.Execute())
}
