package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/jnova/pkg/dump"
	"github.com/chazu/jnova/pkg/lexer"
)

// run executes the command line with fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, verbose, sourceLevel = "", 0, ""
	tokensJSON, parseFormat, parseDocs = false, string(dump.JSON), false

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "class A {}", "tokens", "-")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	want := "0\tCLASS\tclass\n6\tIDENTIFIER\tA\n8\tLBRACE\t{\n9\tRBRACE\t}\n10\tEOF\t\n"
	if out != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestTokens_JSON(t *testing.T) {
	out, _, err := run(t, "x = 1;", "tokens", "--json", "-")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	var items []struct {
		Token string `json:"token"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	kinds := make([]string, len(items))
	for i, it := range items {
		kinds[i] = it.Token
	}
	want := []string{
		lexer.IDENTIFIER.String(), lexer.EQ.String(), lexer.INTLITERAL.String(),
		lexer.SEMI.String(), lexer.EOF.String(),
	}
	if strings.Join(kinds, " ") != strings.Join(want, " ") {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if items[2].Text != "1" {
		t.Errorf("literal text = %q", items[2].Text)
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, "A.java", "class A { int x = 1 + y; }")
	for _, f := range dump.Formats {
		t.Run(string(f), func(t *testing.T) {
			out, _, err := run(t, "", "parse", "--format", string(f), path)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tree, err := dump.Decode(strings.NewReader(out), f)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if tree.Kind != "COMPILATION_UNIT" || dump.Count(tree) != 9 {
				t.Errorf("tree = %+v", tree)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	out, errOut, err := run(t, "class A { int x = ; }", "parse", "-")
	if err == nil || err.Error() != "1 error" {
		t.Errorf("err = %v, want 1 error", err)
	}
	if !strings.Contains(errOut, "<stdin>:[1,19]: error:") {
		t.Errorf("stderr = %q", errOut)
	}
	if !strings.Contains(out, "ERRONEOUS") {
		t.Errorf("tree lacks the erroneous node:\n%s", out)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	if _, _, err := run(t, "", "parse", "--format", "xml", "-"); err == nil {
		t.Error("parse --format xml should fail")
	}
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "Good.java", "class Good {}")
	bad := writeFile(t, "Bad.java", "class Bad { void m() { x + 1; } }")
	old := writeFile(t, "Old.java", "class Old { java.util.List<String> l; }")

	tests := []struct {
		name    string
		args    []string
		wantErr string
		stderr  []string
	}{
		{name: "clean", args: []string{"check", good}},
		{
			name:    "errors",
			args:    []string{"check", good, bad},
			wantErr: "1 error",
			stderr:  []string{"not a statement", "\n1 error\n"},
		},
		{name: "level from flag", args: []string{"--source", "1.4", "check", old}, wantErr: "1 error"},
		{name: "default level", args: []string{"check", old}},
		{name: "missing file", args: []string{"check", filepath.Join(t.TempDir(), "Nope.java")}, wantErr: "1 error"},
		{name: "bad level", args: []string{"--source", "8", "check", good}, wantErr: "unknown source level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := run(t, "", tt.args...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("err = %v\n%s", err, errOut)
				}
			} else if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
			for _, s := range tt.stderr {
				if !strings.Contains(errOut, s) {
					t.Errorf("stderr lacks %q:\n%s", s, errOut)
				}
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	conf := writeFile(t, "jnova.toml", "source = \"1.4\"\ndoc-comments = true\n")
	path := writeFile(t, "A.java", "/** Doc. */ class A { java.util.List<String> l; }")

	out, _, err := run(t, "", "--config", conf, "parse", path)
	if err == nil {
		t.Error("generics at 1.4 should fail")
	}
	if !strings.Contains(out, "Doc.") {
		t.Errorf("doc comment missing from tree:\n%s", out)
	}

	bad := writeFile(t, "bad.toml", "sauce = 1\n")
	if _, _, err := run(t, "", "--config", bad, "check", path); err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("err = %v", err)
	}
}

func TestServe(t *testing.T) {
	in := `{"name": "A.java", "text": "class A {}"}` + "\n"
	out, _, err := run(t, in, "serve")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	var resp struct {
		Name   string `json:"name"`
		Errors int    `json:"errors"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, out)
	}
	if resp.Name != "A.java" || resp.Errors != 0 {
		t.Errorf("response = %+v", resp)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "jnova v"+Version+"\n") || !strings.Contains(out, "Source Level: 1.5") {
		t.Errorf("output:\n%s", out)
	}
}
