package main

import "github.com/viewtk/viewtk/cmd/viewtk/cmd"

func main() {
	cmd.Execute()
}
