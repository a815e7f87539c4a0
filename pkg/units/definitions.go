package units

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type unitDefinition struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Factor  float64  `yaml:"factor"`
	Unit    string   `yaml:"unit"`
}

type definitionsFile struct {
	Units []unitDefinition `yaml:"units"`
}

// LoadDefinitions reads additional unit definitions from a YAML file and
// registers them. Each entry names a new unit as a scale factor applied to an
// existing unit expression:
//
//	units:
//	  - name: basis_points
//	    aliases: [bps]
//	    factor: 0.01
//	    unit: percent
//
// A zero factor defaults to 1. Definitions are applied in order, so later
// entries may reference earlier ones.
func (r *Registry) LoadDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading unit definitions %s: %w", path, err)
	}

	var defs definitionsFile
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parsing unit definitions %s: %w", path, err)
	}

	for _, def := range defs.Units {
		factor := def.Factor
		if factor == 0 {
			factor = 1
		}
		if err := r.Define(def.Name, factor, def.Unit); err != nil {
			return fmt.Errorf("unit definitions %s: %w", path, err)
		}
		for _, alias := range def.Aliases {
			if err := r.Define(alias, factor, def.Unit); err != nil {
				return fmt.Errorf("unit definitions %s: %w", path, err)
			}
		}
	}
	return nil
}
