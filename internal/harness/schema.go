package harness

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.cue
var scenarioSchema string

// validateSchema checks a raw scenario document against the #Scenario
// definition: closed field sets, enum values and numeric ranges.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	v := def.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
