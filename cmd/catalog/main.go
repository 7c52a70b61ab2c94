package main

import "MiniCatalog/internal/cli"

func main() {
	cli.Execute()
}
