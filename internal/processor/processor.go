// Package processor drives the line-by-line scan over the input text and builds the search reply
package processor

import (
	"context"
	"strings"

	"github.com/UnendingLoop/GrepLite/internal/matcher"
	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

// ProcessTask - полный цикл обработки одного задания: скан, подсчёт, хеш ответа
func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchReply {
	reply := model.SearchReply{
		TaskID: task.TaskID,
	}

	reply.Lines = p.Run(ctx, task.Text, &task.SP)
	reply.Count = len(reply.Lines)

	// считаем общий хеш - получатель может проверить целостность ответа
	reply.HashSumm = hasher(ctx, reply.Lines)

	return &reply
}

// Run - один линейный проход по тексту: на каждую строку предикат, затем XOR с инверсией.
// Результат упорядочен по номеру строки, каждая строка попадает в него не более одного раза.
// Отменённый контекст возвращает пустой результат - частичных результатов не бывает.
func (p Processor) Run(ctx context.Context, text string, SP *model.SearchParam) []model.MatchedLine {
	result := []model.MatchedLine{}
	query := matcher.FoldQuery(SP)

	for i, line := range splitLines(text) {
		select {
		case <-ctx.Done():
			return []model.MatchedLine{}
		default:
			isMatch := matcher.FindMatch(SP, query, line)
			if SP.InvertResult { // --invert-match
				isMatch = !isMatch
			}
			if isMatch {
				result = append(result, model.MatchedLine{Index: i, Text: line})
			}
		}
	}

	return result
}

// splitLines - режет текст по '\n' на срезы исходного буфера, без копирования содержимого.
// Завершающий '\n' не порождает лишнюю пустую запись; '\r' перед '\n' НЕ отрезается,
// поэтому CRLF-вход сравнивается и выводится вместе с '\r' - как в референсном поведении.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func hasher(ctx context.Context, lines []model.MatchedLine) uint64 {
	hs := xxhash.New()
	for _, l := range lines {
		select {
		case <-ctx.Done():
			return 0
		default:
			// разделитель обязателен: без него ["ab","c"] и ["a","bc"] дали бы одинаковый хеш
			_, _ = hs.WriteString(l.Text)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
