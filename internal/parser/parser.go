// Package parser puts os.Args and the ignore-case toggle into model.Config and validates it
package parser

import (
	"errors"
	"strings"

	"github.com/UnendingLoop/srep/internal/model"
)

// IgnoreCaseEnv включает поиск без учета регистра, если значение начинается с 't'
const IgnoreCaseEnv = "SREP_IGNORE_CASE"

var (
	ErrNoQueryAndFilePath = errors.New("need to provide both query and file_path")
	ErrNoFilePath         = errors.New("need to provide file_path - query provided")
)

// BuildConfig собирает конфиг из аргументов запуска. args[0] - имя программы и пропускается,
// лишние аргументы игнорируются. lookupEnv обычно os.LookupEnv.
func BuildConfig(args []string, lookupEnv func(string) (string, bool)) (model.Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	// сначала валидация аргументов, окружение читаем только после нее
	switch len(args) {
	case 0:
		return model.Config{}, ErrNoQueryAndFilePath
	case 1:
		return model.Config{}, ErrNoFilePath
	}

	return model.Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: ignoreCase(lookupEnv),
	}, nil
}

// регистр важен: "T" и "TRUE" дают false
func ignoreCase(lookupEnv func(string) (string, bool)) bool {
	if lookupEnv == nil {
		return false
	}
	val, ok := lookupEnv(IgnoreCaseEnv)
	return ok && strings.HasPrefix(val, "t")
}
