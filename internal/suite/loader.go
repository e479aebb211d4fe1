package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case at index %d has no name", i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Rejected && (c.Grammar != nil || c.Semantics != nil || len(c.Tokens) > 0) {
			return nil, fmt.Errorf("case %q is rejected and cannot expect verdicts or tokens", c.Name)
		}
	}

	return &s, nil
}
