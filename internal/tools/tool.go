// Package tools exposes the skills as named, schema-described tools that an
// agent runtime can list and call.
package tools

import (
	"context"
)

// Tool is a callable skill with a JSON schema for its arguments.
type Tool interface {
	Name() string
	Description() string
	Schema() Schema
	Run(ctx context.Context, args Args) (interface{}, error)
}

type funcTool struct {
	name        string
	description string
	schema      Schema
	run         func(ctx context.Context, args Args) (interface{}, error)
}

func (t *funcTool) Name() string        { return t.name }
func (t *funcTool) Description() string { return t.description }
func (t *funcTool) Schema() Schema      { return t.schema }

func (t *funcTool) Run(ctx context.Context, args Args) (interface{}, error) {
	if args == nil {
		args = Args{}
	}
	return t.run(ctx, args)
}

// New wraps run as a Tool.
func New(name, description string, schema Schema, run func(ctx context.Context, args Args) (interface{}, error)) Tool {
	return &funcTool{name: name, description: description, schema: schema, run: run}
}
