// Package reader loads the whole source file into memory for the search
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"
)

func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}

	// бинарные файлы не ищем
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %q does not contain valid UTF-8 text", fileName)
	}

	return string(raw), nil
}
