package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/renderertest"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerCountsAndForwards(t *testing.T) {
	rec := renderertest.NewRecorder()
	p := NewProfiler(rec)

	h, err := p.CreateUniformBlock(1, shader.BlockLayout{Name: "View", Size: 16})
	require.NoError(t, err)
	require.NoError(t, p.WriteUniformBlock(h, make([]byte, 16)))
	require.NoError(t, p.BindUniformBlock(1, h))

	assert.Equal(t, Stats{Creates: 1, Writes: 1, Binds: 1, Bytes: 16}, p.Stats())
	assert.Len(t, rec.Calls, 3)

	rec.Fail[renderertest.OpWrite] = errors.New("lost device")
	assert.Error(t, p.WriteUniformBlock(h, make([]byte, 16)))
	assert.Equal(t, 1, p.Stats().Writes)
}

func TestProfilerTick(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(renderertest.NewRecorder(),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithInterval(time.Second),
	)
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	h, err := p.CreateUniformBlock(1, shader.BlockLayout{Name: "Lights", Size: 80})
	require.NoError(t, err)
	require.NoError(t, p.WriteUniformBlock(h, make([]byte, 80)))

	clock = clock.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Empty(t, buf.String())

	clock = clock.Add(500 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "writes/s=1")
	assert.Equal(t, Stats{}, p.Stats())
}
