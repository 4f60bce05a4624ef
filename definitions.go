package clparse

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/types"
)

const (
	shortPrefix = "-"
	longPrefix  = "--"
	shortHelp   = "-h"
	longHelp    = "--help"
	trueValue   = "true"
	falseValue  = "false"
)

// OptionDef describes a single declared flag or option. Instances are built
// by the CommandLineDef Add* methods and are read-only during parse.
type OptionDef struct {
	// Aliases is sorted at definition time by prefix-trimmed name so the
	// short alias orders before its long forms.
	Aliases []string
	// ValueName is the synopsis placeholder for the value. Empty on flags.
	ValueName string
	// DefaultValue is the value used when the option is absent from input.
	// HasDefault distinguishes an explicit empty default from no default.
	DefaultValue string
	HasDefault   bool
	// Required marks options declared without a default. Flags never are.
	Required bool
	// AcceptedValues restricts the resolved value to a closed set. Never
	// set on flags.
	AcceptedValues []string
	Description    string
	// TypeOf is Standalone for flags and Single for value-bearing options.
	TypeOf types.OptionType
}

func newOptionDef(aliases []string, valueName string, defaultValue *string, description string, acceptedValues []string, typeOf types.OptionType) (*OptionDef, error) {
	if len(aliases) == 0 {
		return nil, i18n.Default().WrapErrorf(types.ErrInvalidAlias, types.ErrEmptyAliasesKey)
	}

	if err := validateAliases(aliases); err != nil {
		return nil, err
	}
	sortAliases(aliases)

	od := &OptionDef{
		Aliases:        aliases,
		Description:    description,
		AcceptedValues: acceptedValues,
		TypeOf:         typeOf,
	}

	if typeOf == types.Standalone {
		od.DefaultValue = falseValue
		od.HasDefault = true
		return od, nil
	}

	if valueName == "" {
		valueName = deriveValueName(aliases)
	}
	od.ValueName = valueName

	if defaultValue == nil {
		od.Required = true
	} else {
		od.DefaultValue = *defaultValue
		od.HasDefault = true
	}

	return od, nil
}

// shortAlias returns the letter of the single-dash alias, or "" when the
// definition only has long aliases.
func (od *OptionDef) shortAlias() string {
	for _, alias := range od.Aliases {
		if !strings.HasPrefix(alias, longPrefix) && len(alias) == 2 {
			return alias[1:]
		}
	}
	return ""
}

// validateAliases enforces alias syntax. Short aliases are a dash followed by
// exactly one character, long aliases are two dashes followed by at least two
// characters.
func validateAliases(aliases []string) error {
	for _, alias := range aliases {
		trimmed := strings.TrimLeft(alias, shortPrefix)
		dashes := len(alias) - len(trimmed)
		switch {
		case strings.HasPrefix(alias, longPrefix):
			if dashes != 2 || len(trimmed) < 2 {
				return i18n.Default().WrapErrorf(types.ErrInvalidAlias, types.ErrInvalidLongAliasKey, alias)
			}
		case strings.HasPrefix(alias, shortPrefix):
			if len(trimmed) != 1 {
				return i18n.Default().WrapErrorf(types.ErrInvalidAlias, types.ErrInvalidShortAliasKey, alias)
			}
		default:
			return i18n.Default().WrapErrorf(types.ErrInvalidAlias, types.ErrInvalidAliasKey, alias)
		}
	}
	return nil
}

func sortAliases(aliases []string) {
	sort.Slice(aliases, func(i, j int) bool {
		return strings.TrimLeft(aliases[i], shortPrefix) < strings.TrimLeft(aliases[j], shortPrefix)
	})
}

// deriveValueName derives a synopsis placeholder from the first long alias
// ("--batchSize" becomes "batch-size"), falling back to the short letter.
func deriveValueName(aliases []string) string {
	for _, alias := range aliases {
		if strings.HasPrefix(alias, longPrefix) {
			return strcase.ToKebab(strings.TrimLeft(alias, shortPrefix))
		}
	}
	return strings.TrimLeft(aliases[0], shortPrefix)
}
