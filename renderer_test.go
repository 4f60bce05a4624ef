package clparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clparse/clparse/util"
)

func TestRenderer_Usage(t *testing.T) {
	def := NewCommandLineDef().
		AddFlag([]string{"-b", "--boolean"}, "A boolean value").
		AddFlag([]string{"-f", "--faux"}, "Another boolean value").
		AddOption([]string{"-n", "--num"}, "num", nil, "A required numeric value").
		AddArgument("arg-0").
		AddArgument("arg-1").
		AddArgument("arg-2")

	assert.Equal(t, "Usage: test [-bfh] -n <num> <arg-0> <arg-1> <arg-2>", def.Usage("test"),
		"short flags merge into one sorted cluster and required options stay bare")
}

func TestRenderer_Usage_DefaultedOptionIsBracketed(t *testing.T) {
	def := NewCommandLineDef().
		AddOption([]string{"-b", "--batch"}, "batch size", util.Ptr("10"), "Batch Size").
		AddFlag([]string{"-m"}, "The m flag")

	assert.Equal(t, "Usage: test [-hm] [-b <batch size>]", def.Usage("test"),
		"defaulted options are bracketed as optional")
}

func TestRenderer_Usage_LongOnlyFlag(t *testing.T) {
	def := NewCommandLineDef().
		AddFlag([]string{"--verbose"}, "Verbose output").
		AddOption([]string{"-n", "--num"}, "num", nil, "A numeric value")

	assert.Equal(t, "Usage: test [-h] -n <num> [--verbose]", def.Usage("test"),
		"long-only flags are bracketed individually and sorted among options")
}

func TestRenderer_Usage_DerivedValueName(t *testing.T) {
	def := NewCommandLineDef().
		AddOption([]string{"-b", "--batchSize"}, "", nil, "Batch Size")

	assert.Equal(t, "Usage: test [-h] -b <batch-size>", def.Usage("test"),
		"the placeholder derives from the first long alias in kebab case")
}

func TestRenderer_Help(t *testing.T) {
	def := NewCommandLineDef().
		AddFlag([]string{"-b", "--boolean"}, "A boolean value").
		AddFlag([]string{"-f", "--faux"}, "Another boolean value").
		AddOption([]string{"-n", "--num"}, "num", nil, "A required numeric value").
		AddArgument("arg-0").
		AddArgument("arg-1").
		AddArgument("arg-2")

	expected := "" +
		"     -h, --help : Display usage message\n" +
		"  -b, --boolean : A boolean value\n" +
		"     -f, --faux : Another boolean value\n" +
		"-n, --num <num> : A required numeric value\n" +
		"        <arg-0> : positional argument\n" +
		"        <arg-1> : positional argument\n" +
		"        <arg-2> : positional argument\n"

	assert.Equal(t, expected, def.Help(),
		"descriptions align right of the widest alias column")
}

func TestRenderer_Help_DefaultAndAcceptedValueSuffixes(t *testing.T) {
	def := NewCommandLineDef().
		AddOptionWithValues([]string{"--level"}, "level", util.Ptr("med"), "Detail level",
			[]string{"low", "med", "high"})

	expected := "" +
		"     -h, --help : Display usage message\n" +
		"--level <level> : Detail level (defaults to: med) (one of: low, med, high)\n"

	assert.Equal(t, expected, def.Help(),
		"defaults and accepted sets are appended to the description")
}

func TestRenderer_Help_ReplacedHelpFlag(t *testing.T) {
	def := NewCommandLineDef().
		AddFlag([]string{"-h", "--help"}, "Show the manual")

	assert.Equal(t, "-h, --help : Show the manual\n", def.Help(),
		"only the user-defined help flag is listed once replaced")
}
