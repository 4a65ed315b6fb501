package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/chazu/jnova/pkg/config"
)

func TestHandle(t *testing.T) {
	s := New(nil)

	resp := s.Handle(Request{Name: "A.java", Text: "class A { int x = 1; }"})
	if resp.Error != "" || resp.Errors != 0 || len(resp.Diagnostics) != 0 {
		t.Fatalf("unexpected failure: %+v", resp)
	}
	if resp.Tree == nil || resp.Tree.Kind != "COMPILATION_UNIT" {
		t.Fatalf("tree = %+v", resp.Tree)
	}
	if got := resp.Tree.Children[0].Attrs["name"]; got != "A" {
		t.Errorf("class name = %q", got)
	}
}

func TestHandle_ID(t *testing.T) {
	s := New(nil)
	if resp := s.Handle(Request{ID: "req-1", Text: "class A {}"}); resp.ID != "req-1" {
		t.Errorf("ID = %q, want req-1", resp.ID)
	}
	first, second := s.Handle(Request{Text: "class A {}"}), s.Handle(Request{Text: "class A {}"})
	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("assigned ID %q: %v", first.ID, err)
	}
	if first.ID == second.ID {
		t.Error("assigned IDs repeat")
	}
}

func TestHandle_Diagnostics(t *testing.T) {
	resp := New(nil).Handle(Request{Text: "class A { void m() { x + 1; } }"})
	if resp.Errors != 1 || len(resp.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v", resp.Diagnostics)
	}
	want := Message{Severity: "error", Key: "not.stmt", Pos: 23, Row: 1, Column: 24, Text: "not a statement"}
	if resp.Diagnostics[0] != want {
		t.Errorf("diagnostic = %+v, want %+v", resp.Diagnostics[0], want)
	}
	if resp.Tree == nil {
		t.Error("a tree is returned even when there are errors")
	}
}

func TestHandle_SourceLevel(t *testing.T) {
	cfg := config.Default()
	if err := cfg.SetLevel("1.4"); err != nil {
		t.Fatal(err)
	}
	s := New(cfg)
	text := "class A { java.util.List<String> l; }"

	tests := []struct {
		name   string
		source string
		errors int
		errMsg string
	}{
		{name: "configured level", errors: 1},
		{name: "request level", source: "1.5", errors: 0},
		{name: "bad level", source: "1.9", errors: 1, errMsg: "unknown source level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.Handle(Request{Text: text, Source: tt.source})
			if resp.Errors != tt.errors {
				t.Errorf("errors = %d, want %d (%+v)", resp.Errors, tt.errors, resp.Diagnostics)
			}
			if !strings.Contains(resp.Error, tt.errMsg) || (tt.errMsg == "") != (resp.Error == "") {
				t.Errorf("error = %q, want %q", resp.Error, tt.errMsg)
			}
		})
	}
}

func TestRun(t *testing.T) {
	in := strings.Join([]string{
		`{"id": "1", "name": "A.java", "text": "class A {}"}`,
		``,
		`{not json`,
		`{"name": "B.java", "text": "class B { int x = ; }"}`,
	}, "\n")
	var out bytes.Buffer
	if err := New(nil).Run(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got []Response
	dec := json.NewDecoder(&out)
	for dec.More() {
		var r Response
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 3 {
		t.Fatalf("got %d responses, want 3", len(got))
	}
	if got[0].ID != "1" || got[0].Name != "A.java" || got[0].Errors != 0 {
		t.Errorf("first response = %+v", got[0])
	}
	if !strings.HasPrefix(got[1].Error, "invalid JSON") || got[1].Tree != nil || got[1].ID == "" {
		t.Errorf("second response = %+v", got[1])
	}
	if got[2].Name != "B.java" || got[2].Errors != 1 || got[2].Diagnostics[0].Key != "illegal.start.of.expr" {
		t.Errorf("third response = %+v", got[2])
	}
}

func TestRun_Docs(t *testing.T) {
	cfg := config.Default()
	cfg.DocComments = true
	var out bytes.Buffer
	in := `{"text": "/** Doc. */ class A {}"}` + "\n"
	if err := New(cfg).Run(strings.NewReader(in), &out); err != nil {
		t.Fatal(err)
	}
	var r Response
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatal(err)
	}
	if doc := r.Tree.Children[0].Attrs["doc"]; !strings.Contains(doc, "Doc.") {
		t.Errorf("doc = %q", doc)
	}
}

func TestRun_MalformedSourceKeepsServing(t *testing.T) {
	in := strings.Join([]string{
		`{"id": "1", "text": "class A { void m() { for < (int k = 0;;) {} } }"}`,
		`{"id": "2", "text": "class A { void m() { x = <T>int; } }"}`,
		`{"id": "3", "text": "class B {}"}`,
	}, "\n")
	var out bytes.Buffer
	if err := New(nil).Run(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	dec := json.NewDecoder(&out)
	var got []Response
	for dec.More() {
		var r Response
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 3 {
		t.Fatalf("got %d responses, want 3", len(got))
	}
	for _, r := range got[:2] {
		if r.Error != "" || r.Errors == 0 || r.Tree == nil {
			t.Errorf("response %s = %+v", r.ID, r)
		}
	}
	if got[2].ID != "3" || got[2].Errors != 0 {
		t.Errorf("last response = %+v", got[2])
	}
}
