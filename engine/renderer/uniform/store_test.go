package uniform

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/renderertest"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneMaterial(t *testing.T, name string, program shader.Program) material.Material {
	t.Helper()
	m, err := material.FromSource(name, program, shader.SceneBlocksSource)
	require.NoError(t, err)
	return m
}

func TestStoreCreate(t *testing.T) {
	rec := renderertest.NewRecorder()
	store := NewStore(rec)
	m := sceneMaterial(t, "lit", 1)

	set, err := store.Create(m)
	require.NoError(t, err)
	require.NotNil(t, set)

	assert.Equal(t, []renderertest.Call{
		{Op: renderertest.OpCreate, Program: 1, Block: "1/Lights"},
		{Op: renderertest.OpCreate, Program: 1, Block: "1/PointLight"},
		{Op: renderertest.OpCreate, Program: 1, Block: "1/Projection"},
		{Op: renderertest.OpCreate, Program: 1, Block: "1/View"},
	}, rec.Calls)
	assert.Equal(t, 0, rec.Count(renderertest.OpWrite))

	got, ok := store.Get(m)
	require.True(t, ok)
	assert.Same(t, set, got)
	assert.True(t, store.Has(m))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "1/Lights", set.Lights.Handle().Label())
}

func TestStoreCreateTwice(t *testing.T) {
	store := NewStore(renderertest.NewRecorder())
	m := sceneMaterial(t, "lit", 1)
	_, err := store.Create(m)
	require.NoError(t, err)

	_, err = store.Create(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSetExists))
	assert.Equal(t, 1, store.Len())
}

func TestStoreCreateValidation(t *testing.T) {
	store := NewStore(renderertest.NewRecorder())

	_, err := store.Create(material.NewMaterial(material.WithName("bare"), material.WithProgram(2)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingLayout))

	partial := material.NewMaterial(
		material.WithName("partial"),
		material.WithProgram(3),
		material.WithLayout(shader.NewProgramLayout(shader.BlockLayout{Name: "Lights", Size: 16})),
	)
	_, err = store.Create(partial)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBlock))
	assert.Contains(t, err.Error(), "PointLight")
	assert.Equal(t, 0, store.Len())
}

func TestStoreCreateContextError(t *testing.T) {
	rec := renderertest.NewRecorder()
	boom := errors.New("out of memory")
	rec.Fail[renderertest.OpCreate] = boom
	store := NewStore(rec)

	_, err := store.Create(sceneMaterial(t, "lit", 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, store.Len())
}

func TestStoreUpdateWritesThenBinds(t *testing.T) {
	rec := renderertest.NewRecorder()
	store := NewStore(rec)
	m := sceneMaterial(t, "lit", 4)
	set, err := store.Create(m)
	require.NoError(t, err)
	rec.Reset()

	require.NoError(t, set.View.Stage(Values{"viewWorldPosition": math32.Vec3(1, 2, 3)}))
	require.NoError(t, store.Update(m.ProgramInfo(), set.View))

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, renderertest.OpWrite, rec.Calls[0].Op)
	assert.Equal(t, renderertest.OpBind, rec.Calls[1].Op)
	assert.Equal(t, "4/View", rec.Calls[1].Block)
	assert.Equal(t, []float32{1, 2, 3}, rec.Handle(4, "View").Field("viewWorldPosition"))
}

func TestStoreUpdateErrors(t *testing.T) {
	rec := renderertest.NewRecorder()
	store := NewStore(rec)
	m := sceneMaterial(t, "lit", 1)
	set, err := store.Create(m)
	require.NoError(t, err)

	rec.Fail[renderertest.OpBind] = errors.New("lost device")
	err = store.Update(m.ProgramInfo(), set.Lights)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind Lights block")

	err = store.UpdateMaterial(sceneMaterial(t, "other", 2), BlockView)
	assert.True(t, errors.Is(err, ErrNoSet))

	delete(rec.Fail, renderertest.OpBind)
	require.NoError(t, store.UpdateMaterial(m, BlockProjection))
	assert.True(t, errors.Is(store.UpdateMaterial(m, "Shadow"), ErrMissingBlock))
}

func TestStoreRangeOrder(t *testing.T) {
	store := NewStore(renderertest.NewRecorder())
	a := sceneMaterial(t, "a", 1)
	b := sceneMaterial(t, "b", 2)
	c := sceneMaterial(t, "c", 3)
	for _, m := range []material.Material{b, a, c} {
		_, err := store.Create(m)
		require.NoError(t, err)
	}

	var names []string
	require.NoError(t, store.Range(func(m material.Material, _ *Set) error {
		names = append(names, m.Name())
		return nil
	}))
	assert.Equal(t, []string{"b", "a", "c"}, names)
	assert.Equal(t, []material.Material{b, a, c}, store.Materials())
}

func TestStoreRangeVisitsAllOnError(t *testing.T) {
	store := NewStore(renderertest.NewRecorder())
	for i := 1; i <= 3; i++ {
		_, err := store.Create(sceneMaterial(t, "m", shader.Program(i)))
		require.NoError(t, err)
	}

	first := errors.New("first")
	third := errors.New("third")
	visited := 0
	err := store.Range(func(m material.Material, _ *Set) error {
		visited++
		switch m.ProgramInfo().Program {
		case 1:
			return first
		case 3:
			return third
		}
		return nil
	})
	assert.Equal(t, 3, visited)
	assert.True(t, errors.Is(err, first))
	assert.True(t, errors.Is(err, third))
}

func TestStoreRelease(t *testing.T) {
	store := NewStore(renderertest.NewRecorder())
	m := sceneMaterial(t, "lit", 1)
	_, err := store.Create(m)
	require.NoError(t, err)

	assert.True(t, store.Release(m))
	assert.False(t, store.Has(m))
	assert.False(t, store.Release(m))

	_, err = store.Create(m)
	assert.NoError(t, err)
}
