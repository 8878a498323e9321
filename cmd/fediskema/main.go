package main

import "github.com/reoring/fediskema/internal/cli"

func main() {
	cli.Execute()
}
