package main

import "github.com/sidra/lingua/internal/commands"

func main() {
	commands.Execute()
}
