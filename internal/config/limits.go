// README: Optional YAML override for the rate-limit window table.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"voyago/internal/modules/ratelimit"
)

// limitsFile mirrors the YAML shape:
//
//	scopes:
//	  generate:
//	    - window: 1m
//	      max: 10
type limitsFile struct {
	Scopes map[string][]limitWindow `yaml:"scopes"`
}

type limitWindow struct {
	Window string `yaml:"window"`
	Max    int    `yaml:"max"`
}

// LoadLimits reads a scope table from the YAML file at path.
func LoadLimits(path string) (map[string][]ratelimit.Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read limits file: %w", err)
	}

	var f limitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse limits file: %w", err)
	}
	if len(f.Scopes) == 0 {
		return nil, fmt.Errorf("limits file %s defines no scopes", path)
	}

	scopes := make(map[string][]ratelimit.Window, len(f.Scopes))
	for name, windows := range f.Scopes {
		for _, w := range windows {
			d, err := time.ParseDuration(w.Window)
			if err != nil {
				return nil, fmt.Errorf("scope %q: invalid window %q: %w", name, w.Window, err)
			}
			if d <= 0 || w.Max <= 0 {
				return nil, fmt.Errorf("scope %q: window and max must be positive", name)
			}
			scopes[name] = append(scopes[name], ratelimit.Window{Duration: d, Max: w.Max})
		}
	}
	return scopes, nil
}
