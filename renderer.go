package clparse

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/types"
	"github.com/clparse/clparse/util"
)

// Renderer produces usage and help text from a definition.
type Renderer interface {
	Usage(programName string) string
	Help() string
}

// DefaultRenderer renders the definition into the standard synopsis and help
// block layout. Both are pure functions of the definition.
type DefaultRenderer struct {
	def   *CommandLineDef
	width int
}

// NewRenderer creates a renderer wrapping help descriptions to the terminal
// width of stdout, or 80 columns when stdout is not a terminal.
func NewRenderer(def *CommandLineDef) *DefaultRenderer {
	return &DefaultRenderer{
		def:   def,
		width: util.TerminalWidth(os.Stdout.Fd()),
	}
}

// Usage renders the one-line synopsis:
//
//	Usage: prog [-bfh] [--verbose] -n <num> [--level <level>] <arg-0> <arg-1>
//
// Short flags merge into one sorted bracket cluster, long-only flags are
// bracketed individually, options sort by trimmed alias with required ones
// bare and defaulted ones bracketed, positional names follow in declared
// order.
func (r *DefaultRenderer) Usage(programName string) string {
	var shortFlags []string
	var items []string

	for _, od := range r.def.optionDefs {
		if od == nil {
			continue
		}
		if od.TypeOf == types.Standalone {
			if short := od.shortAlias(); short != "" {
				shortFlags = append(shortFlags, short)
			} else {
				items = append(items, "["+od.Aliases[0]+"]")
			}
			continue
		}
		synopsis := fmt.Sprintf("%s <%s>", od.Aliases[0], od.ValueName)
		if od.Required {
			items = append(items, synopsis)
		} else {
			items = append(items, "["+synopsis+"]")
		}
	}

	var sb strings.Builder
	sb.WriteString(i18n.Default().T(types.MsgUsageKey, programName))

	if len(shortFlags) > 0 {
		sort.Strings(shortFlags)
		sb.WriteString(" [-" + strings.Join(shortFlags, "") + "]")
	}

	if len(items) > 0 {
		sort.Slice(items, func(i, j int) bool {
			return strings.TrimLeft(items[i], "[-") < strings.TrimLeft(items[j], "[-")
		})
		sb.WriteString(" " + strings.Join(items, " "))
	}

	for _, name := range r.def.argumentNames {
		sb.WriteString(" <" + name + ">")
	}

	return sb.String()
}

// Help renders one line per flag, option, and argument with the
// descriptions right of an aligned ' : ' column:
//
//	     -h, --help : Display usage message
//	-n, --num <num> : A numeric value
//	        <arg-0> : positional argument
func (r *DefaultRenderer) Help() string {
	type helpLine struct {
		left  string
		right string
	}
	var lines []helpLine

	for _, od := range r.def.optionDefs {
		if od == nil {
			continue
		}
		left := strings.Join(od.Aliases, ", ")
		if od.TypeOf == types.Single {
			left += " <" + od.ValueName + ">"
		}
		right := od.Description
		if od.TypeOf == types.Single && od.HasDefault {
			right += " (" + i18n.Default().T(types.MsgDefaultsToKey, od.DefaultValue) + ")"
		}
		if len(od.AcceptedValues) > 0 {
			right += " (" + i18n.Default().T(types.MsgOneOfKey, strings.Join(od.AcceptedValues, ", ")) + ")"
		}
		lines = append(lines, helpLine{left: left, right: right})
	}

	for _, name := range r.def.argumentNames {
		lines = append(lines, helpLine{
			left:  "<" + name + ">",
			right: i18n.Default().T(types.MsgPositionalKey),
		})
	}

	leftWidth := 0
	for _, l := range lines {
		leftWidth = util.Max(leftWidth, len(l.left))
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("%*s : %s\n", leftWidth, l.left, r.wrap(l.right, leftWidth+3)))
	}

	return sb.String()
}

// wrap word-wraps text to the renderer width, indenting continuation lines
// under the description column.
func (r *DefaultRenderer) wrap(text string, indent int) string {
	avail := r.width - indent
	if avail < 20 || len(text) <= avail {
		return text
	}

	words := strings.Fields(text)
	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			sb.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > avail {
			sb.WriteString("\n" + strings.Repeat(" ", indent) + word)
			lineLen = len(word)
			continue
		}
		sb.WriteString(" " + word)
		lineLen += 1 + len(word)
	}

	return sb.String()
}
