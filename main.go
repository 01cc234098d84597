package main

import "github.com/dotcommander/modtriage/cmd"

func main() {
	cmd.Execute()
}
