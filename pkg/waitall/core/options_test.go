package core

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingObserver struct{ calls int }

func (c *countingObserver) CallFinished(Summary) { c.calls++ }
func (c *countingObserver) LateCompletion(uuid.UUID) {}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.False(t, IsCancelOnTimeoutEnabled(ctx, false))
	assert.True(t, IsCancelOnTimeoutEnabled(ctx, true))
	assert.NotNil(t, LoggerFrom(ctx))
	assert.IsType(t, NopObserver{}, ObserverFrom(ctx))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()
	log := zap.NewExample()
	obs := &countingObserver{}

	ctx := WithWorkerOptions(context.Background(), 3)
	ctx = WithWaitOptions(ctx, true)
	ctx = WithLogger(ctx, log)
	ctx = WithObserver(ctx, obs)

	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 10))
	assert.True(t, IsCancelOnTimeoutEnabled(ctx, false))
	assert.Same(t, log, LoggerFrom(ctx))

	ObserverFrom(ctx).CallFinished(Summary{})
	assert.Equal(t, 1, obs.calls)
}

func TestOptions_NilValuesIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, ctx, WithLogger(ctx, nil))
	assert.Equal(t, ctx, WithObserver(ctx, nil))
}
