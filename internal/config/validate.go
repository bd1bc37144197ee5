package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSrc string

// Validate checks cfg against the embedded CUE schema.
func Validate(cfg Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := ctx.Encode(toMap(cfg))
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// toMap mirrors the schema field names. Nil lists become empty lists.
func toMap(cfg Config) map[string]any {
	return map[string]any{
		"database":        cfg.Database,
		"organization":    cfg.Organization,
		"currency_symbol": cfg.CurrencySymbol,
		"log_level":       cfg.LogLevel,
		"log_format":      cfg.LogFormat,
		"denominations": map[string]any{
			"bill": numbers(cfg.Denominations.Bill),
			"coin": numbers(cfg.Denominations.Coin),
			"roll": numbers(cfg.Denominations.Roll),
		},
	}
}

func numbers(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
