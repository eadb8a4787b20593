package main

import "github.com/dstapl/osrs-gph/internal/adapters/cli"

func main() {
	cli.Execute()
}
