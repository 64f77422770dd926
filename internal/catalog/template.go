package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateEnv returns the data available to example templates.
// Kept deliberately small: the current directory and user identity are the
// only values an example invocation legitimately depends on.
func templateEnv() map[string]string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	home, _ := os.UserHomeDir()
	return map[string]string{
		"CWD":  cwd,
		"DIR":  filepath.Base(cwd),
		"HOME": home,
		"USER": os.Getenv("USER"),
	}
}

// ExpandExample expands Go template placeholders in an example invocation,
// with sprig's function map available ({{ .CWD | base }} etc). Expansion is
// applied at render time only; matching always operates on the raw text.
// Invalid templates render as the raw string.
func ExpandExample(cmd string) string {
	if !strings.Contains(cmd, "{{") {
		return cmd
	}

	tmpl, err := template.New("example").Funcs(sprig.FuncMap()).Parse(cmd)
	if err != nil {
		return cmd
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, templateEnv()); err != nil {
		return cmd
	}
	return b.String()
}
