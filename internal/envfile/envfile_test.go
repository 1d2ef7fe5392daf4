package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"", "OPENAI_API_KEY=\n"},
		{"sk-test123", "OPENAI_API_KEY=sk-test123\n"},
		{"a=b=c", "OPENAI_API_KEY=a=b=c\n"},
		{"with space", "OPENAI_API_KEY=with space\n"},
	}
	for _, tc := range cases {
		if got := Render(tc.key); got != tc.want {
			t.Fatalf("Render(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestMirror_WriteKeyCreatesPythonDir(t *testing.T) {
	vault := t.TempDir()
	m := NewMirror(vault)

	if err := m.WriteKey("sk-test123"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(vault, "python", ".env"))
	if err != nil {
		t.Fatalf("read mirror: %v", err)
	}
	if string(content) != "OPENAI_API_KEY=sk-test123\n" {
		t.Fatalf("unexpected content: %q", string(content))
	}
}

func TestMirror_WriteKeyOverwrites(t *testing.T) {
	vault := t.TempDir()
	m := NewMirror(vault)

	if err := m.WriteKey("first"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}
	if err := m.WriteKey("second"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}

	content, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("read mirror: %v", err)
	}
	if string(content) != "OPENAI_API_KEY=second\n" {
		t.Fatalf("unexpected content: %q", string(content))
	}
}

func TestMirror_WriteKeyIdempotent(t *testing.T) {
	vault := t.TempDir()
	m := NewMirror(vault)

	if err := m.WriteKey("same"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}
	first, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("read mirror: %v", err)
	}

	if err := m.WriteKey("same"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}
	second, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("read mirror: %v", err)
	}

	if string(first) != string(second) {
		t.Fatalf("content changed between identical saves: %q vs %q", first, second)
	}
}

func TestMirror_ReadKeyRoundtrip(t *testing.T) {
	vault := t.TempDir()
	m := NewMirror(vault)

	if err := m.WriteKey("sk-test123"); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}
	key, err := m.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if key != "sk-test123" {
		t.Fatalf("ReadKey = %q, want %q", key, "sk-test123")
	}
}

func TestMirror_ReadKeyMissingFile(t *testing.T) {
	m := NewMirror(t.TempDir())
	if _, err := m.ReadKey(); err == nil {
		t.Fatal("expected error for missing mirror file")
	}
}
