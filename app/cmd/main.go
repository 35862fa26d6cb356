package main

import (
	"os"

	"github.com/ribgsilva/geonote/app/cmd/schema"
)

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}

	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "help":
		fallthrough
	default:
		listCommands()
	}
}

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Storage table commands")
	println("\thelp\t\t\t- Print the commands available")
}
