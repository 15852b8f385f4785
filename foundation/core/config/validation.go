// File: validation.go
// Title: Configuration Validation
// Description: Rule-based validation of required keys, types and integer
//              bounds.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"sort"

	mdwerror "github.com/msto63/halang/foundation/core/error"
)

// ValidationRule defines validation criteria for one key
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int" or "bool"
	Type string
	Min  *int
	Max  *int
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntRange is a convenience for rules with integer bounds
func IntRange(min, max int) ValidationRule {
	return ValidationRule{Type: "int", Min: &min, Max: &max}
}

// Validate checks the configuration against rules. All violations are
// reported together, ordered by key.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			errs = append(errs, err)
		}
	}

	if joined := mdwerror.Join("invalid configuration", errs...); joined != nil {
		return joined.WithOperation("config.Validate")
	}
	return nil
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return mdwerror.New(fmt.Sprintf("required field '%s' is missing", key)).
				WithCode(mdwerror.CodeMissingConfig).
				WithDetail("key", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		n := c.GetInt(key, -1<<31)
		if n == -1<<31 {
			return typeError(key, "an integer")
		}
		if rule.Min != nil && n < *rule.Min {
			return rangeError(key, n, rule)
		}
		if rule.Max != nil && n > *rule.Max {
			return rangeError(key, n, rule)
		}
	case "bool":
		if c.GetBool(key, true) != c.GetBool(key, false) {
			return typeError(key, "a boolean")
		}
	case "string", "":
	default:
		return mdwerror.New(fmt.Sprintf("unknown rule type %q for '%s'", rule.Type, key)).
			WithCode(mdwerror.CodeInternal)
	}
	return nil
}

func typeError(key, want string) error {
	return mdwerror.New(fmt.Sprintf("field '%s' must be %s", key, want)).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("key", key)
}

func rangeError(key string, n int, rule ValidationRule) error {
	err := mdwerror.New(fmt.Sprintf("field '%s' is out of range: %d", key, n)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithDetail("key", key)
	if rule.Min != nil {
		err = err.WithDetail("min", *rule.Min)
	}
	if rule.Max != nil {
		err = err.WithDetail("max", *rule.Max)
	}
	return err
}
