// Package matcher checks one input line against the query under the active match mode, returns bool
package matcher

import (
	"strings"

	"github.com/UnendingLoop/GrepLite/internal/model"
)

// FoldQuery - приводит запрос к нижнему регистру если активен --ignore-case;
// вызывается один раз на весь поиск, а не на каждую строку
func FoldQuery(SP *model.SearchParam) string {
	if SP.IgnoreCase {
		return strings.ToLower(SP.Query)
	}
	return SP.Query
}

// FindMatch - "сырой" результат сравнения строки с запросом, до применения инверсии.
// query должен быть уже обработан через FoldQuery.
func FindMatch(SP *model.SearchParam, query, line string) bool {
	if SP.IgnoreCase { // --ignore-case
		line = strings.ToLower(line)
	}

	switch SP.Mode {
	case model.MatchLine: // --line
		return line == query
	case model.MatchWord: // --word
		return matchWord(query, line)
	default: // substring; пустой запрос совпадает с любой строкой
		return strings.Contains(line, query)
	}
}

// matchWord - строка подходит если хотя бы один её токен целиком равен запросу.
// Токен - максимальная последовательность символов [A-Za-z0-9], всё остальное - разделители;
// пустые токены по краям строки отбрасываются.
func matchWord(query, line string) bool {
	start := -1
	for i := 0; i < len(line); i++ {
		if isWordByte(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && line[start:i] == query {
			return true
		}
		start = -1
	}
	// хвостовой токен без закрывающего разделителя
	return start >= 0 && line[start:] == query
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
