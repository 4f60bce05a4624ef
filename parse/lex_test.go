package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`prog -f "/tmp/some file" 'single quoted' plain`)

	assert.Nil(t, err, "well-formed input should split")
	assert.Equal(t, []string{"prog", "-f", "/tmp/some file", "single quoted", "plain"}, args,
		"quoted fields should stay whole with quotes stripped")
}

func TestSplit_UnbalancedQuote(t *testing.T) {
	_, err := Split(`prog "unterminated`)
	assert.NotNil(t, err, "an unterminated quote should fail")
}
