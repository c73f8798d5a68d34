package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Tabular is implemented by command results that can be printed as a table.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]any
}

var ErrNotTabular = errors.New("output has no table form")

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - yaml
// - table (only for results implementing Tabular)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "yaml":
		return WriteYAML(w, v)
	case "table":
		return WriteTable(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// Valid reports whether format is one Write accepts.
func Valid(format string) bool {
	switch format {
	case "", "json", "yaml", "table":
		return true
	}
	return false
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable renders the "data" of an envelope (or v itself) as a table.
// pretty switches from the plain column layout to a boxed one.
func WriteTable(w io.Writer, v any, pretty bool) error {
	if env, ok := v.(map[string]any); ok {
		if data, ok := env["data"]; ok {
			v = data
		}
	}
	t, ok := v.(Tabular)
	if !ok {
		return ErrNotTabular
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if pretty {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(plainStyle())
	}

	header := table.Row{}
	for _, h := range t.TableHeader() {
		header = append(header, h)
	}
	tw.AppendHeader(header)
	for _, r := range t.TableRows() {
		tw.AppendRow(table.Row(r))
	}
	tw.Render()
	return nil
}

func plainStyle() table.Style {
	st := table.StyleDefault
	st.Options.DrawBorder = false
	st.Options.SeparateColumns = false
	st.Options.SeparateHeader = false
	st.Options.SeparateRows = false
	st.Box.PaddingLeft = ""
	st.Box.PaddingRight = "  "
	return st
}
