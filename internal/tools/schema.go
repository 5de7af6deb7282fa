package tools

// Schema is a JSON schema of type object.
type Schema struct {
	Properties map[string]interface{}
	Required   []string
}

// ObjectSchema builds a Schema from property definitions and required names.
func ObjectSchema(properties map[string]interface{}, required ...string) Schema {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	return Schema{Properties: properties, Required: required}
}

// JSON returns the schema as a plain JSON object.
func (s Schema) JSON() map[string]interface{} {
	out := map[string]interface{}{
		"type":       "object",
		"properties": s.Properties,
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}

func StringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func StringDefaultProperty(description, def string) map[string]interface{} {
	p := StringProperty(description)
	p["default"] = def
	return p
}

func BooleanProperty(description string, def bool) map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": description,
		"default":     def,
	}
}

func StringArrayProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       map[string]interface{}{"type": "string"},
	}
}

// IDProperty accepts a numeric id as a string or an integer.
func IDProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        []string{"string", "integer"},
		"description": description,
	}
}
