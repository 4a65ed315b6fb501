package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const miniTokens = `
[[token]]
name = "EOF"

[[token]]
name = "IF"
spelling = "if"
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "mini.toml")
	out := filepath.Join(dir, "mini_gen.go")
	if err := os.WriteFile(in, []byte(miniTokens), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "", "--in", in, "--out", out, "--package", "mini"); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	code := string(data)
	for _, want := range []string{"from mini.toml. DO NOT EDIT.", "package mini", "EOF Token = iota", `IF: "if"`} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code lacks %q:\n%s", want, code)
		}
	}
}

func TestRun_Modes(t *testing.T) {
	mismatched := miniTokens + "\n[[token]]\nname = \"KW_ELSE\"\nspelling = \"else\"\n"

	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantErr    string
		wantOut    string
		wantStderr string
	}{
		{name: "stdin to stdout", stdin: miniTokens, wantOut: "package lexer"},
		{name: "version", args: []string{"--version"}, wantOut: "jnova-tokengen version " + versionStr},
		{name: "dry run", stdin: miniTokens, args: []string{"--dry-run"}, wantStderr: "would generate 2 tokens"},
		{name: "warning", stdin: mismatched, wantOut: "KW_ELSE", wantStderr: "Warning: keyword \"else\" is named KW_ELSE"},
		{name: "strict", stdin: mismatched, args: []string{"--strict"}, wantErr: "--strict"},
		{name: "empty input", wantErr: "no input provided"},
		{name: "invalid input", stdin: "[[token]]\nname = \"A B\"\n", wantErr: "not a valid identifier"},
		{name: "missing file", args: []string{"--in", "does-not-exist.toml"}, wantErr: "cannot read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want one containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("stdout lacks %q:\n%s", tt.wantOut, out)
			}
			if !strings.Contains(errOut, tt.wantStderr) {
				t.Errorf("stderr lacks %q:\n%s", tt.wantStderr, errOut)
			}
		})
	}
}
