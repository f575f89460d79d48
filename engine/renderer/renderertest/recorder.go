// Package renderertest provides a recording renderer.Context for tests.
package renderertest

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// Op names a recorded Context call.
type Op string

const (
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpBind   Op = "bind"
)

// Call is one recorded Context call. Data is a copy of the written bytes for OpWrite.
type Call struct {
	Op      Op
	Program shader.Program
	Block   string
	Data    []byte
}

// Handle is the BlockHandle issued by a Recorder.
type Handle struct {
	program shader.Program
	layout  shader.BlockLayout
	data    []byte
}

// Label returns "<program>/<block name>".
func (h *Handle) Label() string {
	return fmt.Sprintf("%d/%s", h.program, h.layout.Name)
}

// Layout returns the block layout the handle was created from.
func (h *Handle) Layout() shader.BlockLayout {
	return h.layout
}

// Data returns the bytes most recently written to the block.
func (h *Handle) Data() []byte {
	return h.data
}

// Recorder is an in-memory renderer.Context that records every call.
// Set Fail to make the next matching call return an error.
type Recorder struct {
	Calls   []Call
	Handles []*Handle
	Fail    map[Op]error
}

var _ renderer.Context = &Recorder{}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Fail: make(map[Op]error)}
}

func (r *Recorder) CreateUniformBlock(program shader.Program, layout shader.BlockLayout) (renderer.BlockHandle, error) {
	if err := r.Fail[OpCreate]; err != nil {
		return nil, err
	}
	h := &Handle{program: program, layout: layout, data: make([]byte, layout.Size)}
	r.Handles = append(r.Handles, h)
	r.Calls = append(r.Calls, Call{Op: OpCreate, Program: program, Block: h.Label()})
	return h, nil
}

func (r *Recorder) WriteUniformBlock(handle renderer.BlockHandle, data []byte) error {
	if err := r.Fail[OpWrite]; err != nil {
		return err
	}
	h, ok := handle.(*Handle)
	if !ok {
		return renderer.ErrForeignHandle
	}
	h.data = append([]byte(nil), data...)
	r.Calls = append(r.Calls, Call{Op: OpWrite, Program: h.program, Block: h.Label(), Data: h.data})
	return nil
}

func (r *Recorder) BindUniformBlock(program shader.Program, handle renderer.BlockHandle) error {
	if err := r.Fail[OpBind]; err != nil {
		return err
	}
	h, ok := handle.(*Handle)
	if !ok {
		return renderer.ErrForeignHandle
	}
	r.Calls = append(r.Calls, Call{Op: OpBind, Program: program, Block: h.Label()})
	return nil
}

// Handle returns the handle created for program's block, or nil.
func (r *Recorder) Handle(program shader.Program, block string) *Handle {
	for _, h := range r.Handles {
		if h.program == program && h.layout.Name == block {
			return h
		}
	}
	return nil
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Writes returns the labels of written blocks in call order.
func (r *Recorder) Writes() []string {
	var labels []string
	for _, c := range r.Calls {
		if c.Op == OpWrite {
			labels = append(labels, c.Block)
		}
	}
	return labels
}

// Reset forgets recorded calls but keeps handles and their data.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Float32s decodes n little-endian float32 values from data starting at offset.
func Float32s(data []byte, offset uint64, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		o := offset + uint64(i)*4
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[o : o+4]))
	}
	return out
}

// Field decodes the float32 values of a named block member from the handle's data.
// It panics if the block has no such member.
func (h *Handle) Field(name string) []float32 {
	f, ok := h.layout.Field(name)
	if !ok {
		panic(fmt.Sprintf("renderertest: block %s has no field %q", h.layout.Name, name))
	}
	return Float32s(h.data, f.Offset, int(f.Size/4))
}
