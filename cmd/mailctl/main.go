package main

import (
	"github.com/custodia-labs/mailctl/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
