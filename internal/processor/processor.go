// Package processor filters input contents line by line and returns matching lines in their original order
package processor

import (
	"iter"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
)

// ProcessInput выбирает вариант поиска по режиму из конфига
func ProcessInput(cfg model.Config, contents string) []string {
	if cfg.IgnoreCase { //-i
		return SearchCaseInsensitive(cfg.Query, contents)
	}
	return Search(cfg.Query, contents)
}

// Search возвращает строки, содержащие query как есть (с учетом регистра)
func Search(query, contents string) []string {
	return getMatchingLines(contents, matcher.New(query, false))
}

// SearchCaseInsensitive сравнивает строки и query в нижнем регистре, но возвращает строки в исходном виде
func SearchCaseInsensitive(query, contents string) []string {
	return getMatchingLines(contents, matcher.New(query, true))
}

func getMatchingLines(contents string, m matcher.Matcher) []string {
	result := []string{}
	for line := range lines(contents) {
		if m.Match(line) {
			result = append(result, line)
		}
	}
	return result
}

// lines отдает строки без терминаторов ("\n" или "\r\n") как подстроки contents - без копирования;
// завершающий перевод строки не дает лишней пустой строки
func lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
