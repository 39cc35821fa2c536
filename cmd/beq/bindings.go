package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/booleq/booleq/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// loadBindings assembles the variable bindings for a run: the -f file
// (YAML or JSON) converted to a JSON document, then each -p merge patch
// applied in order, then the -e pairs overlaid last.
func loadBindings(file string, patches []string, env map[string]bool) (map[string]bool, error) {
	doc := []byte("{}")
	if file != "" {
		d, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not read bindings %q: %w", file, err)
		}
		doc, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("could not decode bindings %q: %w", file, err)
		}
	}
	for _, patch := range patches {
		p, err := yaml.YAMLToJSON([]byte(patch))
		if err != nil {
			return nil, fmt.Errorf("could not decode patch %q: %w", patch, err)
		}
		doc, err = jsonpatch.MergePatch(doc, p)
		if err != nil {
			return nil, fmt.Errorf("could not apply patch %q: %w", patch, err)
		}
	}
	bindings := map[string]bool{}
	if err := json.Unmarshal(doc, &bindings); err != nil {
		return nil, fmt.Errorf("bindings must map names to booleans: %w", err)
	}
	for name, v := range env {
		bindings[name] = v
	}
	return bindings, nil
}

func applyBindings(node *ir.Node, bindings map[string]bool) error {
	for name, v := range bindings {
		if err := ir.SetVariableState(node, name, v); err != nil {
			return err
		}
	}
	return nil
}
