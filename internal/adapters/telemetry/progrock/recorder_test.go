package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/recipe/internal/adapters/telemetry/progrock"
)

// captureWriter keeps the latest state of every vertex it sees.
type captureWriter struct {
	mu       sync.Mutex
	vertexes map[string]*vprogrock.Vertex
	closed   bool
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{vertexes: make(map[string]*vprogrock.Vertex)}
}

func (w *captureWriter) WriteStatus(update *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range update.Vertexes {
		w.vertexes[v.Name] = v
	}
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertex(name string) *vprogrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.vertexes[name]
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecorder_Stages(t *testing.T) {
	w := newCaptureWriter()
	recorder := progrock.NewRecorder(w)
	ctx := context.Background()

	_, discover := recorder.Record(ctx, "discover")
	discover.Log("found recipe.yaml")
	discover.Complete(nil)

	_, fingerprint := recorder.Record(ctx, "fingerprint")
	fingerprint.Cached()
	fingerprint.Complete(nil)

	_, decode := recorder.Record(ctx, "decode broken.yaml")
	decode.Complete(errors.New("malformed declaration"))

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)

	got := w.vertex("discover")
	require.NotNil(t, got)
	assert.NotNil(t, got.Completed)
	assert.Nil(t, got.Error)

	got = w.vertex("fingerprint")
	require.NotNil(t, got)
	assert.True(t, got.Cached)

	got = w.vertex("decode broken.yaml")
	require.NotNil(t, got)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "malformed declaration")
}
