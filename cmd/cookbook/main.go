package main

import (
	"github.com/cookbook-dev/cookbook/pkg/cli"
)

func main() {
	cli.Execute()
}
