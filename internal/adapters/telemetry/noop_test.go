package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/telemetry"
)

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()
	ctx := context.Background()

	got, vertex := rec.Record(ctx, "decode")
	assert.Equal(t, ctx, got)

	vertex.Log("ignored")
	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	require.NoError(t, rec.Close())
}
