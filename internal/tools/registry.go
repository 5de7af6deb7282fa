package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
)

// ErrUnknownTool is returned by Call for unregistered names.
var ErrUnknownTool = errors.New("unknown tool")

// Registry manages the available tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool, replacing any tool with the same name.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// RegisterAll adds multiple tools.
func (r *Registry) RegisterAll(tools ...Tool) {
	for _, tool := range tools {
		r.Register(tool)
	}
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, tool := range list {
		names[i] = tool.Name()
	}
	return names
}

// Call runs the named tool.
func (r *Registry) Call(ctx context.Context, name string, args Args) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Run(ctx, args)
}

// ToAPITools converts the registered tools to Claude API format.
func (r *Registry) ToAPITools() []anthropic.ToolUnionParam {
	return r.ToAPIToolsFiltered(func(Tool) bool { return true })
}

// ToAPIToolsFiltered converts the tools matching filter.
func (r *Registry) ToAPIToolsFiltered(filter func(Tool) bool) []anthropic.ToolUnionParam {
	var out []anthropic.ToolUnionParam
	for _, tool := range r.List() {
		if !filter(tool) {
			continue
		}
		schema := tool.Schema()
		out = append(out, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: schema.Properties,
					Required:   schema.Required,
				},
			},
		})
	}
	return out
}

// FilterByNames returns a filter that matches tools by name.
func FilterByNames(names ...string) func(Tool) bool {
	nameSet := make(map[string]bool)
	for _, name := range names {
		nameSet[name] = true
	}
	return func(t Tool) bool {
		return nameSet[t.Name()]
	}
}
