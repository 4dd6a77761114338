package algorithm

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestList(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		l := &List{}
		check.True(t, l.Empty())
		check.Equal(t, Nil, l.Head())
		check.Equal(t, "nil", l.String())
		assert.NotError(t, l.Validate())
	})
	t.Run("Prepend", func(t *testing.T) {
		l := &List{}
		l.Prepend(1)
		l.Prepend(2)
		l.Prepend(3)
		check.Equal(t, 3, l.Len())
		check.Equal(t, int64(3), l.Value(l.Head()))
		check.Equal(t, int64(1), l.Value(l.TailOf(l.Head())))
		check.Equal(t, "3 -> 2 -> 1 -> nil", l.String())
		assert.NotError(t, l.Validate())
	})
	t.Run("NewList", func(t *testing.T) {
		l := NewList(4, 5, 6)
		check.True(t, slices.Equal([]int64{4, 5, 6}, l.Values()))
	})
	t.Run("Release", func(t *testing.T) {
		l := NewList(1)
		l.Release()
		check.True(t, l.Empty())
		check.Equal(t, 0, len(l.Values()))
		l.Prepend(9)
		check.True(t, slices.Equal([]int64{9}, l.Values()))
	})
	t.Run("TailOfNil", func(t *testing.T) {
		defer func() {
			check.True(t, recover() != nil)
		}()
		(&List{}).TailOf(Nil)
	})
	t.Run("ValidateCycle", func(t *testing.T) {
		l := NewList(1, 2, 3)
		l.nodes[l.TailOf(l.Head())].next = l.Head()
		check.Error(t, l.Validate())
	})
	t.Run("ValidateOutOfBounds", func(t *testing.T) {
		l := NewList(1, 2)
		l.nodes[l.Head()].next = 9
		check.Error(t, l.Validate())
	})
	t.Run("ValidateUnreachable", func(t *testing.T) {
		l := NewList(1, 2, 3)
		l.nodes[l.Head()].next = Nil
		check.Error(t, l.Validate())
	})
}
