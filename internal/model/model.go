// Package model contains the run configuration built from os.Args and the DTO used by search-node
package model

// Config - параметры одного запуска, собираются один раз и дальше только читаются
type Config struct {
	Query      string // подстрока для поиска, пустая строка совпадает с любой строкой
	FilePath   string // файл читает вызывающая сторона, не ядро
	IgnoreCase bool   // берется из SREP_IGNORE_CASE при сборке конфига
}

// SearchTask - запрос к search-node
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`
	Contents   string `json:"contents"`
	IgnoreCase bool   `json:"ignore_case"`
}

// SearchResult - ответ search-node, Matches никогда не nil
type SearchResult struct {
	TaskID  string   `json:"tid"`
	Digest  uint64   `json:"digest"`
	Matches []string `json:"matches"`
}
