// Command srep prints every line of a file that contains the query.
//
// Usage:
//
//	srep <query> <file_path>
//
// SREP_IGNORE_CASE=true makes the search case-insensitive.
package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/srep/internal/appmode"
	"github.com/UnendingLoop/srep/internal/logger"
	"github.com/UnendingLoop/srep/internal/parser"
)

func main() {
	// собрать конфиг из аргументов и окружения
	cfg, err := parser.BuildConfig(os.Args, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Getenv("SREP_ENV"), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	err = appmode.RunCLI(cfg, os.Stdout, log)
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}
