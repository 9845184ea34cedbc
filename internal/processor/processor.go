// Package processor runs the search for a task received by search-node and hashes the result
package processor

import (
	"context"

	"github.com/UnendingLoop/srep/internal/matcher"
	"github.com/UnendingLoop/srep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID:  task.TaskID,
		Matches: []string{},
	}

	// клиент уже ушел - не ищем
	if ctx.Err() != nil {
		result.Digest = Digest(result.Matches)
		return &result
	}

	cfg := model.Config{Query: task.Query, IgnoreCase: task.IgnoreCase}
	result.Matches = matcher.Run(cfg, task.Contents)
	result.Digest = Digest(result.Matches)

	return &result
}

// Digest - xxhash64 по всем строкам, каждая с '\n' на конце, чтобы ["ab"] и ["a","b"] различались
func Digest(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
