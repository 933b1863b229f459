// Package tools exposes the named read operations over Aha! and Confluence.
// Each operation takes a flat argument record and always yields text: the
// rendered report, or a one-line "Error <doing>: <message>".
package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/steveyegge/digest/internal/config"
	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/digest"
)

// Kind is the type of an operation parameter.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
)

// Param declares one argument of an operation.
type Param struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     interface{}
	Description string
}

// RunFunc performs an operation with validated arguments.
type RunFunc func(ctx context.Context, args Args) (string, error)

// Operation is a named, self-contained read operation.
type Operation struct {
	// Name is "<group>.<operation>", e.g. "aha-features.list".
	Name        string
	Description string
	Params      []Param
	// Doing completes "Error ..." messages, e.g. "fetching features".
	Doing string
	Run   RunFunc
}

// Result is the outcome of an operation. Text is always set; Err is non-nil
// when Text is an error message.
type Result struct {
	Text string `json:"text"`
	Err  error  `json:"-"`
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// ErrInvalidArgs wraps argument validation failures.
var ErrInvalidArgs = errors.New("invalid arguments")

// Invoke validates raw against the declared params and runs the operation.
// Failures, including panics, are converted into an error Result.
func (o *Operation) Invoke(ctx context.Context, raw map[string]interface{}) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("internal error: %v", p)
			res = o.failure(err)
		}
	}()

	args, err := o.bind(raw)
	if err != nil {
		return o.failure(err)
	}

	text, err := o.Run(ctx, args)
	if err != nil {
		return o.failure(err)
	}
	return Result{Text: text}
}

func (o *Operation) failure(err error) Result {
	debug.Logf("[tools] %s failed: %v\n", o.Name, err)
	return Result{Text: fmt.Sprintf("Error %s: %s", o.Doing, err.Error()), Err: err}
}

// bind applies defaults and coerces values to each param's kind. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func (o *Operation) bind(raw map[string]interface{}) (Args, error) {
	args := make(Args, len(o.Params))
	known := make(map[string]bool, len(o.Params))
	for _, p := range o.Params {
		known[p.Name] = true
		var value interface{}
		if v, ok := raw[p.Name]; ok && v != nil && !blank(v) {
			coerced, err := coerce(p.Kind, v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgs, p.Name, err)
			}
			value = coerced
		}
		if value == nil || value == "" {
			if p.Required {
				return nil, fmt.Errorf("%w: %s is required", ErrInvalidArgs, p.Name)
			}
			if p.Default != nil {
				args[p.Name] = p.Default
			}
			continue
		}
		args[p.Name] = value
	}
	for k := range raw {
		if !known[k] {
			return nil, fmt.Errorf("%w: unknown argument %q", ErrInvalidArgs, k)
		}
	}
	return args, nil
}

// blank reports whether v is a string of only whitespace.
func blank(v interface{}) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func coerce(kind Kind, v interface{}) (interface{}, error) {
	switch kind {
	case KindInt:
		switch t := v.(type) {
		case int:
			return t, nil
		case float64:
			if t != float64(int(t)) {
				return nil, fmt.Errorf("expected an integer, got %v", t)
			}
			return int(t), nil
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(t))
			if err != nil {
				return nil, fmt.Errorf("expected an integer, got %q", t)
			}
			return n, nil
		}
	case KindBool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(t))
			if err != nil {
				return nil, fmt.Errorf("expected true or false, got %q", t)
			}
			return b, nil
		}
	default:
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t), nil
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(t), nil
		}
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}

// Args holds bound, typed argument values.
type Args map[string]interface{}

// String returns a string argument, or "".
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns an int argument, or 0.
func (a Args) Int(name string) int {
	n, _ := a[name].(int)
	return n
}

// Bool returns a bool argument, or false.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func renderer() *digest.Renderer {
	return digest.New(config.GetString("display.date_format"))
}

// common params
var (
	pageParam = Param{Name: "page", Kind: KindInt, Default: 1, Description: "Page number for pagination"}
	perPage   = Param{Name: "per_page", Kind: KindInt, Default: 20, Description: "Results per page (max 100)"}
)
