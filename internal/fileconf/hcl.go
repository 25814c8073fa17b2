package fileconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/appconf/internal/config"
)

// loadHCL parses an HCL config file. Top-level blocks are class sections and
// their attributes are constant expressions; blocks nest into subsections.
//
//	Application {
//	  log_level = 10
//	}
//	Server {
//	  host = "example.com"
//	  tags = ["a", "b"]
//	}
func loadHCL(path string) (config.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type in config file %s", path)
	}
	return decodeBody(body, path)
}

// decodeBody translates an HCL body into a config section: attributes become
// typed values, nested blocks become nested sections.
func decodeBody(body *hclsyntax.Body, path string) (config.Config, error) {
	cfg := config.New()
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, path, diags)
		}
		cfg[name] = val
	}
	for _, block := range body.Blocks {
		sub, err := decodeBody(block.Body, path)
		if err != nil {
			return nil, err
		}
		cfg.Section(block.Type).Merge(sub)
	}
	return cfg, nil
}
