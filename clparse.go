// Copyright 2024-2026, the clparse authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package clparse provides declarative command-line definition and parsing.
//
// Callers describe the flags, options, and positional arguments their
// program accepts and then hand the library the raw argument vector. The
// following features are supported:
//
//   - option aliases, e.g. "-f", "--file"
//   - options with negative values, e.g. --increment -1
//   - option default values and required options
//   - restricted value sets, e.g. --optimize with valid values 1, 2, 3
//   - flag concatenation, e.g. -xvgf instead of -x -v -g -f
//   - automatic usage and help message generation
//   - -h, --help registered by default
//   - missing value detection for options
//   - unordered options and arguments
//   - typed retrieval of options and arguments, e.g. int32, string, time.Time
//
// The engine performs no I/O and never exits the process. Parse errors are
// returned to the caller together with access to the generated usage and
// help text.
package clparse

import (
	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/parse"
	"github.com/clparse/clparse/types"
	"github.com/clparse/clparse/types/orderedmap"
)

// CommandLineDef defines the valid command-line options and arguments for a
// program. It is built fluently, is read-only during parse, and may be
// reused across any number of Parse calls.
type CommandLineDef struct {
	// optionDefs is the arena of declared flags and options in registration
	// order. A replaced implicit help definition leaves a nil slot.
	optionDefs []*OptionDef
	// aliasIndex maps every alias to its arena slot. Insertion order drives
	// deterministic error reporting.
	aliasIndex    *orderedmap.OrderedMap[string, int]
	argumentNames []string
	argumentIndex map[string]int
	// defErr holds the first definition-time error.
	defErr error
	// helpIdx is the arena slot of the implicit help flag, -1 once a caller
	// defines -h or --help explicitly.
	helpIdx int
}

// NewCommandLineDef creates a new CommandLineDef. The -h/--help flag is
// registered implicitly and remains in place unless the caller defines
// either alias explicitly.
func NewCommandLineDef() *CommandLineDef {
	def := &CommandLineDef{
		aliasIndex:    orderedmap.NewOrderedMap[string, int](),
		argumentIndex: map[string]int{},
		helpIdx:       -1,
	}
	def.registerHelp()

	return def
}

// AddFlag adds a boolean flag definition. Flags are never required and
// default to false.
//
// Example:
//
//	def := clparse.NewCommandLineDef().
//		AddFlag([]string{"-v", "--verbose"}, "Enable verbose output")
func (def *CommandLineDef) AddFlag(aliases []string, description string) *CommandLineDef {
	od, err := newOptionDef(aliases, "", nil, description, nil, types.Standalone)

	return def.register(od, err)
}

// AddOption adds a value-bearing option definition. A nil defaultValue marks
// the option required; util.Ptr supplies inline defaults. An empty valueName
// derives the synopsis placeholder from the first long alias.
//
// Example:
//
//	def := clparse.NewCommandLineDef().
//		AddOption([]string{"-n", "--num"}, "num", nil, "A numeric value").
//		AddOption([]string{"--level"}, "", util.Ptr("med"), "Detail level")
func (def *CommandLineDef) AddOption(aliases []string, valueName string, defaultValue *string, description string) *CommandLineDef {
	od, err := newOptionDef(aliases, valueName, defaultValue, description, nil, types.Single)

	return def.register(od, err)
}

// AddOptionWithValues adds an option whose resolved value must belong to
// acceptedValues. The restriction applies to supplied and defaulted values
// alike.
func (def *CommandLineDef) AddOptionWithValues(aliases []string, valueName string, defaultValue *string, description string, acceptedValues []string) *CommandLineDef {
	od, err := newOptionDef(aliases, valueName, defaultValue, description, acceptedValues, types.Single)

	return def.register(od, err)
}

// AddArgument adds a positional argument definition. Arguments are required,
// filled in declaration order, and retrieved by name or position.
func (def *CommandLineDef) AddArgument(name string) *CommandLineDef {
	if _, exists := def.argumentIndex[name]; exists {
		return def.fail(i18n.Default().WrapErrorf(types.ErrArgumentRedefined, types.ErrArgumentRedefinedKey, name))
	}

	def.argumentIndex[name] = len(def.argumentNames)
	def.argumentNames = append(def.argumentNames, name)

	return def
}

// Err returns the first definition-time error, such as a redefined alias or
// invalid alias syntax. Parse returns the same error before reading any
// token.
func (def *CommandLineDef) Err() error {
	return def.defErr
}

// Parse parses the raw argument vector against this definition. Element 0 is
// the program name. On success every required option and argument is
// resolved in the returned CommandLine. When the help flag is encountered
// the walk stops and the result reports HelpRequested without further
// validation.
func (def *CommandLineDef) Parse(args []string) (*CommandLine, error) {
	if def.defErr != nil {
		return nil, def.defErr
	}

	return def.parse(parse.NewState(args))
}

// ParseString splits a command line using POSIX shell quoting rules and
// parses the result.
func (def *CommandLineDef) ParseString(argString string) (*CommandLine, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return def.Parse(args)
}

// Usage returns the one-line usage synopsis for this definition. It is a
// pure function of the definition and is identical before and after any
// parse.
func (def *CommandLineDef) Usage(programName string) string {
	return NewRenderer(def).Usage(programName)
}

// Help returns the multi-line help block for this definition, one line per
// flag, option, and argument.
func (def *CommandLineDef) Help() string {
	return NewRenderer(def).Help()
}

func (def *CommandLineDef) registerHelp() {
	od, err := newOptionDef([]string{shortHelp, longHelp}, "", nil,
		i18n.Default().T(types.MsgHelpDescriptionKey), nil, types.Standalone)
	if err != nil {
		def.fail(err)
		return
	}

	def.helpIdx = len(def.optionDefs)
	def.optionDefs = append(def.optionDefs, od)
	for _, alias := range od.Aliases {
		def.aliasIndex.Set(alias, def.helpIdx)
	}
}

func (def *CommandLineDef) register(od *OptionDef, err error) *CommandLineDef {
	if err != nil {
		return def.fail(err)
	}

	// An explicit definition of -h or --help replaces the implicit help
	// flag. Its arena slot is tombstoned so earlier indices stay valid.
	if def.helpIdx >= 0 {
		for _, alias := range od.Aliases {
			if alias == shortHelp || alias == longHelp {
				def.removeHelp()
				break
			}
		}
	}

	for _, alias := range od.Aliases {
		if _, exists := def.aliasIndex.Get(alias); exists {
			return def.fail(i18n.Default().WrapErrorf(types.ErrOptionRedefined, types.ErrOptionRedefinedKey, alias))
		}
	}

	idx := len(def.optionDefs)
	def.optionDefs = append(def.optionDefs, od)
	for _, alias := range od.Aliases {
		def.aliasIndex.Set(alias, idx)
	}

	return def
}

func (def *CommandLineDef) removeHelp() {
	for _, alias := range def.optionDefs[def.helpIdx].Aliases {
		def.aliasIndex.Delete(alias)
	}
	def.optionDefs[def.helpIdx] = nil
	def.helpIdx = -1
}

func (def *CommandLineDef) fail(err error) *CommandLineDef {
	if def.defErr == nil {
		def.defErr = err
	}

	return def
}
