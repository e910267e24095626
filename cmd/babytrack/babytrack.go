package main

import (
	"log"

	"github.com/minhquang4334/baby-tracker/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
