package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/steveyegge/digest/internal/tools"
	"github.com/steveyegge/digest/internal/ui"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatHTML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or html)", format)
}

// operationOutput is the --format json shape of one operation result.
type operationOutput struct {
	Operation string `json:"operation"`
	Text      string `json:"text"`
	Error     string `json:"error,omitempty"`
}

// outputJSON writes data as pretty-printed JSON.
func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeResult renders res in the requested format. Text output is rendered
// with glamour and goes through the pager when stdout is a terminal.
func writeResult(w io.Writer, name string, res tools.Result, format string, pager ui.PagerOptions) error {
	switch format {
	case formatJSON:
		out := operationOutput{Operation: name, Text: res.Text}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		return outputJSON(w, out)
	case formatHTML:
		html, err := ui.NewHTMLRenderer().Render(res.Text)
		if err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
		_, err = fmt.Fprintln(w, html)
		return err
	}

	if res.Err != nil {
		_, err := fmt.Fprintln(w, ui.RenderFail(res.Text))
		return err
	}
	return ui.ToPager(w, ui.RenderMarkdown(res.Text)+"\n", pager)
}
