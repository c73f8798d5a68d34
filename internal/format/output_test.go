package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type people []struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

func (p people) TableHeader() []string { return []string{"NAME", "AGE"} }

func (p people) TableRows() [][]any {
	var out [][]any
	for _, x := range p {
		out = append(out, []any{x.Name, x.Age})
	}
	return out
}

func sample() people {
	return people{{"Ada", 36}, {"Linus", 28}}
}

func TestWriteJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": sample()}, "json", false); err != nil {
		t.Fatal(err)
	}
	var env map[string]any
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	data, _ := env["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("data = %#v", env["data"])
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("compact JSON should be one line: %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, map[string]any{"data": sample()}, "", true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("pretty JSON should be indented: %q", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": sample()}, "yaml", false); err != nil {
		t.Fatal(err)
	}
	var env struct {
		Data []map[string]any `yaml:"data"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if len(env.Data) != 2 || env.Data[0]["name"] != "Ada" {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestWriteTable(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer
		if err := Write(&buf, map[string]any{"data": sample()}, "table", pretty); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"NAME", "AGE", "Ada", "Linus", "36"} {
			if !strings.Contains(out, want) {
				t.Fatalf("pretty=%v: expected %q in:\n%s", pretty, want, out)
			}
		}
	}
}

func TestWriteTableRejectsPlainValues(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, map[string]any{"data": map[string]string{"a": "b"}}, "table", false)
	if !errors.Is(err, ErrNotTabular) {
		t.Fatalf("err = %v, want ErrNotTabular", err)
	}
}

func TestUnknownFormat(t *testing.T) {
	if Valid("edn") {
		t.Fatalf("edn is not supported")
	}
	var buf bytes.Buffer
	if err := Write(&buf, 1, "edn", false); err == nil {
		t.Fatalf("expected error")
	}
}
