package main

import (
	"log"
	"os"

	"github.com/UnendingLoop/minigrep/internal/app"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
)

func main() {
	// разбор аргументов и окружения, затем поиск с выводом в stdout
	cmd := parser.NewCommand(os.Environ(), func(cfg model.Config) error {
		return app.Run(cfg, os.Stdout)
	})

	if err := cmd.Execute(); err != nil {
		log.Printf("Failed to run minigrep: %v", err)
		os.Exit(1)
	}
}
