package reader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	inputLine := "line1\nline2\r\nline3\nline4"

	cases := []struct {
		name     string
		fileName func(t *testing.T) string
		wantRes  string
		wantErr  string
		wantIs   error
	}{
		{
			name:     "Positive - 1 file",
			fileName: func(t *testing.T) string { return createTempFile(t, []byte(inputLine)) },
			wantRes:  inputLine,
		},
		{
			name:     "Positive - empty file",
			fileName: func(t *testing.T) string { return createTempFile(t, nil) },
			wantRes:  "",
		},
		{
			name:     "Negative - file is a directory",
			fileName: func(t *testing.T) string { return t.TempDir() },
			wantErr:  "is a directory",
		},
		{
			name:     "Negative - file not found",
			fileName: func(t *testing.T) string { return filepath.Join(t.TempDir(), "test_unreal_file_12345.txt") },
			wantErr:  "error opening file",
			wantIs:   fs.ErrNotExist,
		},
		{
			name:     "Negative - invalid UTF-8",
			fileName: func(t *testing.T) string { return createTempFile(t, []byte{'o', 'k', '\n', 0xff, 0xfe}) },
			wantErr:  "not valid UTF-8",
			wantIs:   reader.ErrInvalidEncoding,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := reader.ReadInput(tt.fileName(t))

			if tt.wantErr == "" {
				require.NoError(t, err)
				require.Equal(t, tt.wantRes, res)
				return
			}

			require.ErrorContains(t, err, tt.wantErr)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			require.Empty(t, res)
		})
	}
}

// вспомогательная функция для создания временного файла
func createTempFile(t *testing.T, content []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "minigrep_test.txt")
	if err := os.WriteFile(name, content, 0o644); err != nil {
		t.Fatalf("failed to write provided content to temp-file: %v", err)
	}
	return name
}
