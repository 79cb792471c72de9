package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeGrammar(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "label.ebnf")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

const twoLineGrammar = `
Label = "AB" " " Digit .
Digit = "0" … "9" .
`

func TestGrammarTry(t *testing.T) {
	path := writeGrammar(t, twoLineGrammar)

	tests := []struct {
		name       string
		lines      []string
		wantOut    string
		wantStderr string
	}{
		{
			name:    "complete",
			lines:   []string{"AB", "5"},
			wantOut: "line 1: viable, complete=false\nline 2: viable, complete=true\nDigit\t5\n",
		},
		{
			name:       "not viable",
			lines:      []string{"XY"},
			wantStderr: "line 1: no match: \"XY\"\n",
		},
		{
			name:       "not viable on second line",
			lines:      []string{"AB", "C"},
			wantOut:    "line 1: viable, complete=false\n",
			wantStderr: "line 2: no match: \"AB C\"\n",
		},
		{
			name:       "incomplete",
			lines:      []string{"AB"},
			wantOut:    "line 1: viable, complete=false\n",
			wantStderr: "no match: \"AB\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(newGrammarTryCmd(), append([]string{path}, tt.lines...)...)
			if (err != nil) != (tt.wantStderr != "") {
				t.Errorf("error = %v", err)
			}
			if stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantOut)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestGrammarTryMissingStart(t *testing.T) {
	path := writeGrammar(t, twoLineGrammar)
	_, stderr, err := execute(newGrammarTryCmd(), "--start", "Nope", path, "AB")
	if err == nil || !strings.Contains(stderr, "Nope") {
		t.Errorf("error = %v, stderr = %q", err, stderr)
	}
}

func TestGrammarCheck(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		args       []string
		wantStderr string
	}{
		{"valid", twoLineGrammar, []string{"--start", "Label"}, ""},
		{"syntax only", twoLineGrammar, nil, ""},
		{"syntax error", "Label = \"A\" \n", nil, "expected"},
		{"recursive", "Label = \"A\" [ Label ] .\n", []string{"--start", "Label"}, "recursive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGrammar(t, tt.src)
			_, stderr, err := execute(newGrammarCheckCmd(), append(tt.args, path)...)
			if tt.wantStderr == "" {
				if err != nil || stderr != "" {
					t.Errorf("error = %v, stderr = %q", err, stderr)
				}
				return
			}
			if err == nil || !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("error = %v, stderr = %q, want containing %q", err, stderr, tt.wantStderr)
			}
		})
	}

	_, stderr, err := execute(newGrammarCheckCmd(), filepath.Join(t.TempDir(), "missing.ebnf"))
	if err == nil || !strings.Contains(stderr, "open file") {
		t.Errorf("missing file: error = %v, stderr = %q", err, stderr)
	}
}
