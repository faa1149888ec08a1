// Package app runs the search: reads the source file, filters its lines and prints the result
package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// Run печатает в out найденные строки, по одной на строку; ничего не найдено - не ошибка
func Run(cfg model.Config, out io.Writer) error {
	// прочитать файл целиком - до этого момента в out ничего не пишется
	contents, err := reader.ReadInput(cfg.FilePath)
	if err != nil {
		return err
	}

	result := processor.ProcessInput(cfg, contents)

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range result {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
