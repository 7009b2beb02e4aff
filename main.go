package main

import "github.com/avollmer/bujo/cmd"

func main() {
	cmd.Execute()
}
