// Package render prints the search reply to the terminal with matched fragments emphasized
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var styleMatch = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

// WriteReply - выводит результат поиска в формате "{номер}: {строка}".
// Подсветка чисто косметическая и не влияет на отбор строк.
func WriteReply(w io.Writer, reply *model.SearchReply, SP *model.SearchParam) {
	if SP.CountFound { // флаг -c: только число совпавших строк
		fmt.Fprintln(w, reply.Count)
		return
	}

	for _, l := range reply.Lines {
		fmt.Fprintf(w, "%d: %s\n", l.Index, Emphasize(l.Text, SP.Query))
	}
}

// Emphasize - подсвечивает каждое буквальное вхождение исходного(не приведённого к нижнему
// регистру) запроса; при --ignore-case вхождения в другом регистре остаются без подсветки
func Emphasize(line, query string) string {
	if query == "" {
		return line
	}

	var sb strings.Builder
	for {
		i := strings.Index(line, query)
		if i < 0 {
			sb.WriteString(line)
			return sb.String()
		}
		sb.WriteString(line[:i])
		sb.WriteString(styleMatch.Render(query))
		line = line[i+len(query):]
	}
}
