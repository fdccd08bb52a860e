package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan int, 1)
	ch <- 4
	v, ok := FromChanFirstOrDefault(ctx, ch, -1)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	close(ch)
	v, ok = FromChanFirstOrDefault(ctx, ch, -1)
	assert.False(t, ok)
	assert.Equal(t, -1, v)

	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()
	v, ok = FromChanFirstOrDefault(timeoutCtx, make(chan int), -2)
	assert.False(t, ok)
	assert.Equal(t, -2, v)
}
