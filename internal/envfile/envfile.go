// Package envfile owns the plaintext env mirror under the vault's python
// directory. The companion scripts read it with load_dotenv, so the written
// content is byte-exact: one line, no quoting, no escaping.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// KeyVariable is the variable name the python companion expects.
	KeyVariable = "OPENAI_API_KEY"

	// RelPath is the mirror location relative to the vault base path.
	RelPath = "python/.env"
)

// Writer mirrors the API key to a file. The settings service depends on this
// capability rather than the filesystem so the flow stays testable.
type Writer interface {
	WriteKey(key string) error
}

// Mirror writes the env mirror inside a vault.
type Mirror struct {
	vaultBase string
}

func NewMirror(vaultBase string) *Mirror {
	return &Mirror{vaultBase: vaultBase}
}

// Path returns the absolute mirror file path.
func (m *Mirror) Path() string {
	return filepath.Join(m.vaultBase, filepath.FromSlash(RelPath))
}

// Render produces the full mirror file content for a key value. Values pass
// through verbatim, including "=" and whitespace; the consumer treats
// everything after the first "=" as the value.
func Render(key string) string {
	return KeyVariable + "=" + key + "\n"
}

// WriteKey overwrites the mirror file with the rendered content. godotenv's
// writer quotes values and sorts keys, which would break the single-line
// contract, so the write is a plain overwrite.
func (m *Mirror) WriteKey(key string) error {
	path := m.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create mirror dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Render(key)), 0600); err != nil {
		return fmt.Errorf("write mirror file: %w", err)
	}
	return nil
}

// ReadKey loads the mirror file back through godotenv, the same way the
// python companion does. Used by the LLM client and diagnostics.
func (m *Mirror) ReadKey() (string, error) {
	vars, err := godotenv.Read(m.Path())
	if err != nil {
		return "", err
	}
	return vars[KeyVariable], nil
}
