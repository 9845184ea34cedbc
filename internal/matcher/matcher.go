// Package matcher checks the lines of the input text for the query substring, with or without case
package matcher

import (
	"strings"

	"github.com/UnendingLoop/srep/internal/model"
)

// Run выбирает вариант поиска по cfg.IgnoreCase
func Run(cfg model.Config, contents string) []string {
	if cfg.IgnoreCase {
		return SearchCaseInsensitive(cfg.Query, contents)
	}
	return Search(cfg.Query, contents)
}

// Search returns the lines of contents that contain query, in file order.
func Search(query, contents string) []string {
	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive lower-cases the query and every line before comparing,
// but returns the lines as they are in contents.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Lines splits contents on '\n'. A trailing newline does not add an empty line, "\r\n" is handled too.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	contents = strings.TrimSuffix(contents, "\n")

	lines := strings.Split(contents, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
