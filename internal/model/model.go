// Package model contains data structures for storing initially provided flags, input-source values and DTO
package model

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeServe  = AppMode("serve")
)

const DefaultServeAddress = "localhost:8080"

// MatchMode - закрытый набор режимов сравнения строк, новые режимы добавляются только сюда
type MatchMode string

const (
	MatchSubstring = MatchMode("substring")
	MatchWord      = MatchMode("word")
	MatchLine      = MatchMode("line")
)

type AppInit struct {
	Mode        AppMode
	Address     string
	SearchParam SearchParam
}

// SearchParam - хранит в себе все возможные флаги и параметры запуска поиска
type SearchParam struct {
	IgnoreCase   bool      `json:"ignore_case"`                                       // --ignore-case — привести запрос и все строки к нижнему регистру перед сравнением
	InvertResult bool      `json:"invert_result"`                                     // --invert-match — инвертировать фильтр: выводить строки, не прошедшие проверку
	Mode         MatchMode `json:"mode" binding:"required,oneof=substring word line"` // --word / --line, без них — substring
	CountFound   bool      `json:"count_found"`                                       // c — выводить только число совпавших строк
	Query        string    `json:"query"`                                             // строка для поиска, может быть пустой
	Source       string    `json:"-"`                                                 // имя файла для чтения данных, пусто = stdin
}

// MatchedLine - одна найденная строка; Index - номер строки во входе, нумерация с нуля
type MatchedLine struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type SearchTask struct {
	TaskID string      `json:"tid" binding:"required"`
	SP     SearchParam `json:"search_param" binding:"required"`
	Text   string      `json:"text"`
}

type SearchReply struct {
	TaskID   string        `json:"tid" binding:"required"`
	HashSumm uint64        `json:"hash"`
	Count    int           `json:"count"`
	Lines    []MatchedLine `json:"lines"`
}
