package game_object

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/renderertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObject(t *testing.T) {
	m := material.NewMaterial(material.WithName("lit"))
	child := NewGameObject(WithID(2))
	obj := NewGameObject(WithID(1), WithMaterial(m), WithChildren(child))

	assert.Equal(t, uint64(1), obj.ID())
	assert.Equal(t, m, obj.Material())
	assert.Equal(t, []GameObject{child}, obj.Children())

	obj.SetID(9)
	assert.Equal(t, uint64(9), obj.ID())

	extra := NewGameObject()
	obj.AddChild(extra)
	assert.Len(t, obj.Children(), 2)
	assert.Nil(t, extra.Material())
}

func TestInitObject(t *testing.T) {
	rec := renderertest.NewRecorder()

	assert.NoError(t, NewGameObject().InitObject(rec))

	var gotCtx renderer.Context
	var gotObj GameObject
	obj := NewGameObject(WithID(4), WithInitHook(func(o GameObject, ctx renderer.Context) error {
		gotObj, gotCtx = o, ctx
		return nil
	}))
	require.NoError(t, obj.InitObject(rec))
	assert.Equal(t, obj, gotObj)
	assert.Equal(t, renderer.Context(rec), gotCtx)

	boom := errors.New("no vertex buffer")
	failing := NewGameObject(WithID(5), WithInitHook(func(GameObject, renderer.Context) error {
		return boom
	}))
	err := failing.InitObject(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "init object 5")
}

func TestWalk(t *testing.T) {
	leaf := NewGameObject(WithID(4))
	c1 := NewGameObject(WithID(2), WithChildren(leaf))
	c2 := NewGameObject(WithID(3))
	root := NewGameObject(WithID(1), WithChildren(c1, c2))

	var ids []uint64
	Walk(root, func(o GameObject) bool {
		ids = append(ids, o.ID())
		return true
	})
	assert.Equal(t, []uint64{1, 2, 4, 3}, ids)

	ids = nil
	Walk(root, func(o GameObject) bool {
		ids = append(ids, o.ID())
		return o.ID() != 2
	})
	assert.Equal(t, []uint64{1, 2, 3}, ids)

	Walk(nil, func(GameObject) bool {
		t.Fatal("visited nil")
		return false
	})
}
