package main

import "github.com/nulzo/routegen/internal/cli"

func main() {
	cli.Execute()
}
