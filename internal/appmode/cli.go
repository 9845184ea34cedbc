// Package appmode provides 2 ways to run srep: one-shot CLI search and long-running search-node
package appmode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/srep/internal/matcher"
	"github.com/UnendingLoop/srep/internal/model"
	"github.com/UnendingLoop/srep/internal/reader"
	"go.uber.org/zap"
)

// RunCLI читает файл из cfg целиком, ищет и печатает каждую найденную строку в out
func RunCLI(cfg model.Config, out io.Writer, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("searching", zap.String("query", cfg.Query), zap.String("file", cfg.FilePath), zap.Bool("ignore_case", cfg.IgnoreCase))

	contents, err := reader.ReadInput(cfg.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	w := bufio.NewWriter(out)
	for _, line := range matcher.Run(cfg, contents) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}
	return w.Flush()
}
