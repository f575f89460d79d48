package light

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/renderertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindRecorder struct {
	visited []Kind
	err     error
}

func (k *kindRecorder) VisitAmbient(l Light) error {
	k.visited = append(k.visited, KindAmbient)
	return k.err
}

func (k *kindRecorder) VisitDirectional(l Light) error {
	k.visited = append(k.visited, KindDirectional)
	return k.err
}

func (k *kindRecorder) VisitPoint(l Light) error {
	k.visited = append(k.visited, KindPoint)
	return k.err
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(KindPoint)
	assert.Equal(t, KindPoint, l.Kind())
	assert.Equal(t, math32.Vec3(1, 1, 1), l.Color())
	assert.Equal(t, math32.Vec3(0, -1, 0), l.Direction())
	assert.Equal(t, float32(1), l.Intensity())
	assert.Equal(t, float32(1), l.Power())
	assert.Equal(t, uint64(0), l.ID())
	assert.Nil(t, l.Material())
	assert.Empty(t, l.Children())
	assert.NoError(t, l.InitObject(renderertest.NewRecorder()))
}

func TestNewLightOptions(t *testing.T) {
	l := NewLight(KindPoint,
		WithID(7),
		WithPosition(1, 2, 3),
		WithColor(0.5, 0.25, 1),
		WithSpecularColor(0.1, 0.2, 0.3),
		WithIntensity(2),
		WithPower(4),
	)
	assert.Equal(t, uint64(7), l.ID())
	assert.Equal(t, math32.Vec3(1, 2, 3), l.Position())
	assert.Equal(t, math32.Vec3(0.5, 0.25, 1), l.Color())
	assert.Equal(t, math32.Vec3(0.1, 0.2, 0.3), l.SpecularColor())
	assert.Equal(t, float32(2), l.Intensity())
	assert.Equal(t, float32(4), l.Power())
}

func TestDirectionIsNormalized(t *testing.T) {
	l := NewLight(KindDirectional, WithDirection(0, -4, 0))
	assert.Equal(t, math32.Vec3(0, -1, 0), l.Direction())

	l.SetDirection(math32.Vec3(3, 0, 4))
	assert.InDelta(t, 0.6, l.Direction().X, 1e-6)
	assert.InDelta(t, 0.8, l.Direction().Z, 1e-6)
}

func TestSetters(t *testing.T) {
	l := NewLight(KindAmbient)
	l.SetColor(math32.Vec3(1, 0, 0))
	l.SetIntensity(0.5)
	l.SetPosition(math32.Vec3(9, 9, 9))
	l.SetSpecularColor(math32.Vec3(0, 1, 0))
	l.SetPower(3)
	l.SetID(11)

	assert.Equal(t, math32.Vec3(1, 0, 0), l.Color())
	assert.Equal(t, float32(0.5), l.Intensity())
	assert.Equal(t, math32.Vec3(9, 9, 9), l.Position())
	assert.Equal(t, math32.Vec3(0, 1, 0), l.SpecularColor())
	assert.Equal(t, float32(3), l.Power())
	assert.Equal(t, uint64(11), l.ID())
}

func TestAccept(t *testing.T) {
	v := &kindRecorder{}
	for _, k := range []Kind{KindPoint, KindAmbient, KindDirectional} {
		require.NoError(t, NewLight(k).Accept(v))
	}
	assert.Equal(t, []Kind{KindPoint, KindAmbient, KindDirectional}, v.visited)

	boom := errors.New("boom")
	err := NewLight(KindAmbient).Accept(&kindRecorder{err: boom})
	assert.True(t, errors.Is(err, boom))

	err = NewLight(Kind(42), WithID(3)).Accept(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kind(42)")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ambient", KindAmbient.String())
	assert.Equal(t, "directional", KindDirectional.String())
	assert.Equal(t, "point", KindPoint.String())
}
