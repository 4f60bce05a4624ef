package clparse

import (
	"strings"

	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/parse"
	"github.com/clparse/clparse/types"
	"github.com/clparse/clparse/types/queue"
	"github.com/clparse/clparse/util"
)

// parse walks the raw arguments once, left to right. Classification order
// per token: quoted literal, exact alias match, numeric-looking negative
// value, flag cluster, unknown option, positional value.
func (def *CommandLineDef) parse(state parse.State) (*CommandLine, error) {
	cl := &CommandLine{
		def:            def,
		values:         make([]string, len(def.optionDefs)),
		seen:           make([]bool, len(def.optionDefs)),
		argumentValues: make([]string, len(def.argumentNames)),
	}

	if state.Advance() {
		cl.programName = state.CurrentArg()
	}

	positionals := queue.New[string]()

	for state.Advance() {
		arg := state.CurrentArg()

		if literal, quoted := unquote(arg); quoted {
			positionals.Enqueue(literal)
			continue
		}

		if idx, found := def.aliasIndex.Get(arg); found {
			if idx == def.helpIdx {
				cl.helpRequested = true
				return cl, nil
			}
			if err := def.matchOption(state, cl, arg, idx); err != nil {
				return nil, err
			}
			continue
		}

		if strings.HasPrefix(arg, shortPrefix) {
			if util.IsNumeric(arg) {
				positionals.Enqueue(arg)
				continue
			}
			if !strings.HasPrefix(arg, longPrefix) && len(arg) > 2 {
				if err := def.expandCluster(cl, arg); err != nil {
					return nil, err
				}
				if cl.helpRequested {
					return cl, nil
				}
				continue
			}
			return nil, i18n.Default().WrapErrorf(types.ErrUnknownOption, types.ErrUnknownOptionKey, arg)
		}

		positionals.Enqueue(arg)
	}

	if positionals.Len() > len(def.argumentNames) {
		return nil, i18n.Default().WrapErrorf(types.ErrArgumentCount, types.ErrArgumentCountKey,
			len(def.argumentNames), positionals.Len())
	}

	for i := range def.argumentNames {
		if val, ok := positionals.Dequeue(); ok {
			cl.argumentValues[i] = val
			cl.argumentCount++
		}
	}

	def.applyDefaults(cl)

	if err := def.checkRequired(cl); err != nil {
		return nil, err
	}
	if err := def.checkAcceptedValues(cl); err != nil {
		return nil, err
	}

	return cl, nil
}

// matchOption resolves an exact alias match. Option values are consumed at
// match time, so a consumed token is never re-interpreted as an alias.
func (def *CommandLineDef) matchOption(state parse.State, cl *CommandLine, alias string, idx int) error {
	od := def.optionDefs[idx]

	value := trueValue
	if od.TypeOf == types.Single {
		if state.Pos()+1 >= state.Len() {
			return i18n.Default().WrapErrorf(types.ErrMissingValue, types.ErrMissingValueKey, alias)
		}
		if _, nextIsAlias := def.aliasIndex.Get(state.Peek()); nextIsAlias {
			return i18n.Default().WrapErrorf(types.ErrMissingValue, types.ErrMissingValueKey, alias)
		}
		state.Skip()
		value = state.CurrentArg()
		if literal, quoted := unquote(value); quoted {
			value = literal
		}
	}

	if cl.seen[idx] {
		return i18n.Default().WrapErrorf(types.ErrOptionRepeated, types.ErrOptionRepeatedKey, alias)
	}
	cl.values[idx] = value
	cl.seen[idx] = true

	return nil
}

// expandCluster activates every short flag named by a concatenated token
// such as -xvgf. Each character must resolve to a registered standalone
// flag.
func (def *CommandLineDef) expandCluster(cl *CommandLine, token string) error {
	for _, c := range strings.TrimPrefix(token, shortPrefix) {
		flag := shortPrefix + string(c)

		idx, found := def.aliasIndex.Get(flag)
		if !found {
			return i18n.Default().WrapErrorf(types.ErrInvalidFlagCluster, types.ErrUnknownOptionKey, flag)
		}
		if def.optionDefs[idx].TypeOf != types.Standalone {
			return i18n.Default().WrapErrorf(types.ErrInvalidFlagCluster, types.ErrClusterNotFlagKey, flag)
		}
		if cl.seen[idx] {
			return i18n.Default().WrapErrorf(types.ErrOptionRepeated, types.ErrOptionRepeatedKey, flag)
		}

		cl.values[idx] = trueValue
		cl.seen[idx] = true
		if idx == def.helpIdx {
			cl.helpRequested = true
			return nil
		}
	}

	return nil
}

func (def *CommandLineDef) applyDefaults(cl *CommandLine) {
	for idx, od := range def.optionDefs {
		if od == nil {
			continue
		}
		if !cl.seen[idx] && od.HasDefault {
			cl.values[idx] = od.DefaultValue
		}
	}
}

// checkRequired collects every missing required option and every unfilled
// positional argument into a single error, in declaration order.
func (def *CommandLineDef) checkRequired(cl *CommandLine) error {
	var missing []string

	for idx, od := range def.optionDefs {
		if od == nil {
			continue
		}
		if od.Required && !cl.seen[idx] {
			missing = append(missing, strings.Join(od.Aliases, "/"))
		}
	}
	for i, name := range def.argumentNames {
		if i >= cl.argumentCount {
			missing = append(missing, "<"+name+">")
		}
	}

	if len(missing) > 0 {
		return i18n.Default().WrapErrorf(types.ErrMissingRequired, types.ErrMissingRequiredKey,
			strings.Join(missing, ", "))
	}

	return nil
}

func (def *CommandLineDef) checkAcceptedValues(cl *CommandLine) error {
	for idx, od := range def.optionDefs {
		if od == nil || len(od.AcceptedValues) == 0 {
			continue
		}
		if od.TypeOf != types.Single || (!cl.seen[idx] && !od.HasDefault) {
			continue
		}
		if !util.Contains(od.AcceptedValues, cl.values[idx]) {
			return i18n.Default().WrapErrorf(types.ErrInvalidValue, types.ErrInvalidValueKey,
				od.Aliases[0], strings.Join(od.AcceptedValues, ","), cl.values[idx])
		}
	}

	return nil
}

// unquote strips one level of matching single or double quotes, marking the
// token as a literal value.
func unquote(arg string) (string, bool) {
	if len(arg) >= 2 && (arg[0] == '\'' || arg[0] == '"') && arg[len(arg)-1] == arg[0] {
		return arg[1 : len(arg)-1], true
	}

	return arg, false
}
