package main

import "github.com/ressKim-io/intent-service/internal/cli"

func main() {
	cli.Execute()
}
