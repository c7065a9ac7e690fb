package undo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	tassert "oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/diaelem/diaobject"
	"oss.terrastruct.com/diaelem/lib/log"
)

// counterChange adds delta to *v on Apply and subtracts it on Revert.
type counterChange struct {
	v     *int
	delta int
	freed *int
	err   error
}

func (c *counterChange) Apply(*diaobject.Object) error {
	if c.err != nil {
		return c.err
	}
	*c.v += c.delta
	return nil
}

func (c *counterChange) Revert(*diaobject.Object) error {
	if c.err != nil {
		return c.err
	}
	*c.v -= c.delta
	return nil
}

func (c *counterChange) Free() {
	*c.freed++
}

func TestHistory(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	v, freed := 0, 0
	h := NewHistory(0)
	push := func(delta int) {
		v += delta
		h.Push(ctx, &counterChange{v: &v, delta: delta, freed: &freed})
	}

	ok, err := h.Undo(ctx)
	tassert.Success(t, err)
	assert.False(t, ok)

	push(1)
	push(10)
	push(100)
	assert.Equal(t, 111, v)

	ok, err = h.Undo(ctx)
	tassert.Success(t, err)
	assert.True(t, ok)
	assert.Equal(t, 11, v)

	_, err = h.Undo(ctx)
	tassert.Success(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, h.CanRedo())

	_, err = h.Redo(ctx)
	tassert.Success(t, err)
	assert.Equal(t, 11, v)

	u, r := h.Stats()
	assert.Equal(t, 2, u)
	assert.Equal(t, 1, r)

	// a new edit drops the pending redo
	push(1000)
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, freed)

	ok, err = h.Redo(ctx)
	tassert.Success(t, err)
	assert.False(t, ok)

	h.Clear()
	assert.Equal(t, 4, freed)
	assert.False(t, h.CanUndo())
}

func TestHistoryMax(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	v, freed := 0, 0
	h := NewHistory(2)
	for i := 1; i <= 3; i++ {
		v += i
		h.Push(ctx, &counterChange{v: &v, delta: i, freed: &freed})
	}
	assert.Equal(t, 1, freed)

	for h.CanUndo() {
		_, err := h.Undo(ctx)
		tassert.Success(t, err)
	}
	// the first change fell off the bottom
	assert.Equal(t, 1, v)
}

func TestHistoryError(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	v, freed := 0, 0
	h := NewHistory(10)
	h.Push(ctx, &counterChange{v: &v, delta: 1, freed: &freed, err: errors.New("gone")})
	h.Push(ctx, nil)

	_, err := h.Undo(ctx)
	assert.EqualError(t, err, "failed to undo: gone")
	// the failed change stays put
	u, r := h.Stats()
	assert.Equal(t, 1, u)
	assert.Equal(t, 0, r)
}
