package main

import (
	"log"

	"github.com/cookbook-dev/cookbook/pkg/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
