package main

import "github.com/mraflifirmansyah/arcanist/internal/cli"

func main() {
	cli.Execute()
}
