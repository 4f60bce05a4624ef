package clparse

import (
	"time"

	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/types"
	"github.com/clparse/clparse/util"
)

// Bindable is the closed set of types option and argument values convert to.
type Bindable interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Time | time.Duration
}

// CommandLine is the immutable result of a successful parse. Every required
// option and argument is resolved; accessor errors are local to a lookup and
// never invalidate the rest of the result.
type CommandLine struct {
	programName    string
	def            *CommandLineDef
	values         []string
	seen           []bool
	argumentValues []string
	argumentCount  int
	helpRequested  bool
}

// ProgramName returns the first element of the parsed argument vector.
func (cl *CommandLine) ProgramName() string {
	return cl.programName
}

// Arguments returns the number of positional arguments filled from input.
func (cl *CommandLine) Arguments() int {
	return cl.argumentCount
}

// Options returns the number of flags and options present on the command
// line, counting an alias group once regardless of how it was spelled.
func (cl *CommandLine) Options() int {
	count := 0
	for _, s := range cl.seen {
		if s {
			count++
		}
	}
	return count
}

// HelpRequested reports whether the help flag was encountered during the
// parse. When true, the caller is expected to surface Help() instead of
// proceeding.
func (cl *CommandLine) HelpRequested() bool {
	return cl.helpRequested
}

// Get returns the raw resolved value for any alias of a declared flag or
// option. The second return value is false only when the alias was never
// declared.
func (cl *CommandLine) Get(alias string) (string, bool) {
	idx, found := cl.def.aliasIndex.Get(alias)
	if !found {
		return "", false
	}

	return cl.values[idx], true
}

// GetArgument returns the raw value of a positional argument by declared
// name.
func (cl *CommandLine) GetArgument(name string) (string, bool) {
	pos, found := cl.def.argumentIndex[name]
	if !found {
		return "", false
	}

	return cl.argumentValues[pos], true
}

// GetArgumentAt returns the raw value of a positional argument by position.
func (cl *CommandLine) GetArgumentAt(index int) (string, bool) {
	if index < 0 || index >= len(cl.argumentValues) {
		return "", false
	}

	return cl.argumentValues[index], true
}

// Option returns the typed value of a declared flag or option, looked up by
// any of its aliases. Flags only convert to bool; an absent optional option
// declared with an empty default yields the zero value.
//
// Example:
//
//	num, err := clparse.Option[int16](cl, "-n")
func Option[T Bindable](cl *CommandLine, alias string) (T, error) {
	var out T

	idx, found := cl.def.aliasIndex.Get(alias)
	if !found {
		return out, i18n.Default().WrapErrorf(types.ErrNotFound, types.ErrNotFoundKey, alias)
	}

	if _, err := util.CanConvert(&out, cl.def.optionDefs[idx].TypeOf, alias); err != nil {
		return out, err
	}

	value := cl.values[idx]
	if value == "" {
		return out, nil
	}
	if err := util.ConvertString(value, &out, alias); err != nil {
		return out, err
	}

	return out, nil
}

// Argument returns the typed value of a positional argument by declared
// name.
func Argument[T Bindable](cl *CommandLine, name string) (T, error) {
	pos, found := cl.def.argumentIndex[name]
	if !found {
		var out T
		return out, i18n.Default().WrapErrorf(types.ErrArgumentNotFound, types.ErrArgumentNotFoundKey, name)
	}

	return ArgumentAt[T](cl, pos)
}

// ArgumentAt returns the typed value of a positional argument by position.
func ArgumentAt[T Bindable](cl *CommandLine, index int) (T, error) {
	var out T

	if index < 0 || index >= len(cl.argumentValues) {
		return out, i18n.Default().WrapErrorf(types.ErrArgumentIndex, types.ErrArgumentIndexKey, index)
	}

	value := cl.argumentValues[index]
	if value == "" {
		return out, nil
	}
	if err := util.ConvertString(value, &out, cl.def.argumentNames[index]); err != nil {
		return out, err
	}

	return out, nil
}
