package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Walk(t *testing.T) {
	state := NewState([]string{"prog", "-n", "1"})

	assert.Equal(t, -1, state.Pos(), "a fresh state starts before the first argument")
	assert.Equal(t, 3, state.Len(), "the state covers all arguments")

	var walked []string
	for state.Advance() {
		walked = append(walked, state.CurrentArg())
	}
	assert.Equal(t, []string{"prog", "-n", "1"}, walked, "Advance should visit every argument in order")

	assert.False(t, state.Advance(), "Advance past the end should fail")
	assert.Equal(t, "", state.Peek(), "Peek past the end should be empty")
}

func TestState_PeekAndSkip(t *testing.T) {
	state := NewState([]string{"-n", "1", "x"})

	assert.True(t, state.Advance(), "the first Advance should succeed")
	assert.Equal(t, "-n", state.CurrentArg(), "the walker should be on the first argument")
	assert.Equal(t, "1", state.Peek(), "Peek should see the next argument without moving")
	assert.Equal(t, 0, state.Pos(), "Peek should not move the position")

	state.Skip()
	assert.Equal(t, "1", state.CurrentArg(), "Skip should consume the peeked argument")

	assert.True(t, state.Advance(), "the walker should reach the last argument")
	assert.Equal(t, "x", state.CurrentArg(), "the walker should be on the last argument")
}

func TestState_ArgAt(t *testing.T) {
	state := NewState([]string{"a", "b"})

	arg, err := state.ArgAt(1)
	assert.Nil(t, err, "an in-range position should resolve")
	assert.Equal(t, "b", arg, "ArgAt should return the argument at the position")

	_, err = state.ArgAt(2)
	assert.ErrorIs(t, err, ErrInvalidPosition, "an out-of-range position should fail")

	_, err = state.ArgAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition, "a negative position should fail")
}

func TestState_CurrentArgOutOfRange(t *testing.T) {
	state := NewState(nil)
	assert.Equal(t, "", state.CurrentArg(), "an empty state has no current argument")
	assert.False(t, state.Advance(), "an empty state cannot advance")
}
