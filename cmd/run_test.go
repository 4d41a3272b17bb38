package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosers_RunNewestFirst(t *testing.T) {
	var order []string
	var cleanup closers

	cleanup.add(func(context.Context) { order = append(order, "metrics") })
	cleanup.add(func(context.Context) { order = append(order, "bot") })
	cleanup.add(func(ctx context.Context) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		order = append(order, "scheduler")
	})
	cleanup.run(time.Second)

	assert.Equal(t, []string{"scheduler", "bot", "metrics"}, order)
}

func TestClosers_DeferredRunSeesLaterSteps(t *testing.T) {
	var closed []string

	startup := func() error {
		var cleanup closers
		defer cleanup.run(time.Second)

		cleanup.add(func(context.Context) { closed = append(closed, "metrics") })
		cleanup.add(func(context.Context) { closed = append(closed, "bot") })
		return assert.AnError
	}

	require.ErrorIs(t, startup(), assert.AnError)
	assert.Equal(t, []string{"bot", "metrics"}, closed)
}

func TestClosers_EmptyRunIsNoop(t *testing.T) {
	var cleanup closers
	assert.NotPanics(t, func() { cleanup.run(time.Second) })
}
