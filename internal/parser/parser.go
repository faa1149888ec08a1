// Package parser puts command-line args and environment into model.Config and validates it for any issues
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/spf13/cobra"
)

var (
	ErrMissingQuery    = errors.New("query not specified")
	ErrMissingFilePath = errors.New("file path not specified")
)

// NewCommand собирает корневую команду; run получает готовый конфиг только после успешной проверки аргументов.
// environ - переменные окружения в формате "KEY=value" (обычно os.Environ())
func NewCommand(environ []string, run func(cfg model.Config) error) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print lines of a file that contain the query.",
		Long: fmt.Sprintf(`Reads the whole file and prints every line containing the query, in original order.
The query is a plain string, not a regexp.

Case-insensitive search is enabled by --ignore-case/-i or by setting %s=true.`, model.IgnoreCaseEnv),
		Example:       "minigrep duct poem.txt\nminigrep rUsT poem.txt -i\nIGNORE_CASE=true minigrep rUsT poem.txt",
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// аргументы уже проверены - дальше только ошибки чтения файла, usage для них не нужен
			cmd.SilenceUsage = true

			envValue, envFound := LookupEnvFold(environ, model.IgnoreCaseEnv)
			cfg := model.Config{
				Query:      args[0],
				FilePath:   args[1],
				IgnoreCase: ResolveIgnoreCase(ignoreCase, envValue, envFound),
			}
			return run(cfg)
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "ignore case distinctions in the query and input lines")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return ErrMissingQuery
	case 1:
		return ErrMissingFilePath
	default:
		return cobra.MaximumNArgs(2)(cmd, args)
	}
}

// ResolveIgnoreCase: флаг командной строки ИЛИ переменная окружения со значением "true" в любом регистре
func ResolveIgnoreCase(flag bool, envValue string, envFound bool) bool {
	if flag {
		return true
	}
	return envFound && matcher.ToLower(envValue) == "true"
}

// LookupEnvFold ищет переменную по имени без учета регистра.
// Точное совпадение имени приоритетнее, иначе берется первый вариант в порядке environ
func LookupEnvFold(environ []string, key string) (string, bool) {
	var value string
	found := false

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.EqualFold(k, key) {
			continue
		}
		if k == key {
			return v, true
		}
		if !found {
			value, found = v, true
		}
	}

	return value, found
}
