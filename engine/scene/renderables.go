package scene

import (
	"slices"

	"cogentcore.org/core/base/ordmap"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// RenderableGroup is the ordered list of scene objects drawn with one shader program.
// Draw loops walk groups in order to switch programs once per group.
type RenderableGroup struct {
	Program shader.Program
	Objects []game_object.GameObject
}

// renderableIndex groups drawable objects by program. Groups keep the order in which
// their program was first seen; objects keep insertion order within a group.
type renderableIndex struct {
	groups *ordmap.Map[shader.Program, *RenderableGroup]
}

func newRenderableIndex() *renderableIndex {
	return &renderableIndex{groups: ordmap.New[shader.Program, *RenderableGroup]()}
}

// add appends obj to the group of program, creating the group if needed.
func (ri *renderableIndex) add(program shader.Program, obj game_object.GameObject) {
	g, ok := ri.groups.ValueByKeyTry(program)
	if !ok {
		g = &RenderableGroup{Program: program}
		ri.groups.Add(program, g)
	}
	g.Objects = append(g.Objects, obj)
}

// remove deletes the first entry of obj from the group of program. Emptied groups are kept.
//
// Returns:
//   - bool: false if obj was not in the group
func (ri *renderableIndex) remove(program shader.Program, obj game_object.GameObject) bool {
	g, ok := ri.groups.ValueByKeyTry(program)
	if !ok {
		return false
	}
	i := slices.Index(g.Objects, obj)
	if i < 0 {
		return false
	}
	g.Objects = slices.Delete(g.Objects, i, i+1)
	return true
}

// group returns a copy of the group of program.
func (ri *renderableIndex) group(program shader.Program) (RenderableGroup, bool) {
	g, ok := ri.groups.ValueByKeyTry(program)
	if !ok {
		return RenderableGroup{}, false
	}
	return RenderableGroup{Program: g.Program, Objects: slices.Clone(g.Objects)}, true
}

// all returns copies of every group in first-seen program order.
func (ri *renderableIndex) all() []RenderableGroup {
	out := make([]RenderableGroup, 0, ri.groups.Len())
	for _, kv := range ri.groups.Order {
		out = append(out, RenderableGroup{Program: kv.Value.Program, Objects: slices.Clone(kv.Value.Objects)})
	}
	return out
}

func (ri *renderableIndex) reset() {
	ri.groups.Reset()
}
