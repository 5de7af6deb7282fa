package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidArgs marks argument decoding failures.
var ErrInvalidArgs = errors.New("invalid arguments")

// Args are the decoded JSON arguments of a tool call.
type Args map[string]interface{}

func argError(name, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgs, name, fmt.Sprintf(format, a...))
}

func (a Args) lookup(name string) (interface{}, bool) {
	v, ok := a[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Require fails when any of names is missing or null.
func (a Args) Require(names ...string) error {
	for _, name := range names {
		if _, ok := a.lookup(name); !ok {
			return argError(name, "required")
		}
	}
	return nil
}

// String returns the named string, or def when it is missing or null.
func (a Args) String(name, def string) (string, error) {
	v, ok := a.lookup(name)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", argError(name, "expected string, got %T", v)
	}
	return s, nil
}

// Bool returns the named boolean, or def when it is missing or null.
func (a Args) Bool(name string, def bool) (bool, error) {
	v, ok := a.lookup(name)
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, argError(name, "expected boolean, got %T", v)
	}
	return b, nil
}

// StringSlice returns the named array of strings. Missing yields nil.
func (a Args) StringSlice(name string) ([]string, error) {
	v, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}
	switch items := v.(type) {
	case []string:
		return items, nil
	case []interface{}:
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, argError(name, "item %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, argError(name, "expected array of strings, got %T", v)
	}
}

// ID returns a numeric identifier given either as a string or an integer.
func (a Args) ID(name string) (string, error) {
	v, ok := a.lookup(name)
	if !ok {
		return "", nil
	}
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		if _, err := id.Int64(); err != nil {
			return "", argError(name, "expected integer, got %s", id)
		}
		return id.String(), nil
	case float64:
		if id != math.Trunc(id) || math.Abs(id) > 1<<53 {
			return "", argError(name, "expected integer, got %v", id)
		}
		return strconv.FormatInt(int64(id), 10), nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	default:
		return "", argError(name, "expected string or integer, got %T", v)
	}
}
