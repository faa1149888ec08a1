// Package matcher checks input line for containing the query - as is or lower-cased, returns bool
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher - проверка одной строки на вхождение запроса
type Matcher interface {
	Match(line string) bool
}

// New возвращает матчер под режим поиска; для ignoreCase запрос приводится к нижнему регистру один раз
func New(query string, ignoreCase bool) Matcher {
	if !ignoreCase {
		return exactMatcher{query: query}
	}

	lower := cases.Lower(language.Und)
	return &foldMatcher{
		query: lower.String(query),
		lower: lower,
	}
}

// ToLower - полное отображение Unicode в нижний регистр без учета локали (İ -> i̇, Σ в конце слова -> ς)
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

type exactMatcher struct {
	query string
}

func (m exactMatcher) Match(line string) bool {
	return strings.Contains(line, m.query)
}

type foldMatcher struct {
	query string // уже в нижнем регистре
	lower cases.Caser
}

// Match сравнивает преобразованные строки целиком, а не посимвольно: одна руна может развернуться в несколько
func (m *foldMatcher) Match(line string) bool {
	return strings.Contains(m.lower.String(line), m.query)
}
