package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/rs/zerolog"
)

func TestFinalSave(t *testing.T) {
	tests := []struct {
		name    string
		content string
		block   bool // directory where the .corrupt backup would go
		want    string
	}{
		{
			name:    "loaded file is rewritten",
			content: `{"read": "21:00"}`,
			want:    "{\n    \"read\": \"21:00\"\n}\n",
		},
		{
			name:    "corrupt file with backup is rewritten",
			content: `{"read": `,
			want:    "{}\n",
		},
		{
			name:    "corrupt file without backup is kept",
			content: `{"read": `,
			block:   true,
			want:    `{"read": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if tt.block {
				if err := os.Mkdir(path+store.CorruptSuffix, 0755); err != nil {
					t.Fatal(err)
				}
			}

			s := store.Load(path, zerolog.Nop())
			if err := finalSave(s, zerolog.Nop()); err != nil {
				t.Fatalf("finalSave() unexpected error: %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintTasks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(`{"standup": "09:30", "groceries": ""}`), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printTasks(&buf, store.Load(path, zerolog.Nop())); err != nil {
		t.Fatal(err)
	}
	want := "09:30  standup\n--     groceries\n"
	if buf.String() != want {
		t.Errorf("printTasks() = %q, want %q", buf.String(), want)
	}
}
