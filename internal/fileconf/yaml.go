package fileconf

import (
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/appconf/internal/config"
)

// loadYAML parses a YAML config file. Top-level mappings are class sections;
// leaf scalars and sequences become typed values.
func loadYAML(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return yamlSection(root, path)
}

// yamlSection translates a decoded YAML mapping into a config section.
// Nested mappings become nested sections, everything else a typed value.
func yamlSection(node map[string]any, path string) (config.Config, error) {
	cfg := config.New()
	for key, val := range node {
		if sub, ok := val.(map[string]any); ok {
			section, err := yamlSection(sub, path)
			if err != nil {
				return nil, err
			}
			cfg[key] = section
			continue
		}
		converted, err := yamlValue(val)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q in %s: %w", key, path, err)
		}
		cfg[key] = converted
	}
	return cfg, nil
}

// yamlValue converts a decoded YAML scalar or sequence into a cty value.
func yamlValue(v any) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for _, item := range v {
			elem, err := yamlValue(item)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, elem)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(v))
		for key, item := range v {
			attr, err := yamlValue(item)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key] = attr
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
