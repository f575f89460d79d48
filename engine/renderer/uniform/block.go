package uniform

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

var (
	// ErrFieldSize is returned when a staged value does not match its member's byte size.
	ErrFieldSize = errors.New("uniform: value size does not match block member")

	// ErrUnsupportedValue is returned when a staged value has a type that cannot be packed.
	ErrUnsupportedValue = errors.New("uniform: unsupported value type")
)

// Values maps flattened block member names (e.g. "ambientLight.color") to the
// values to stage into them.
type Values map[string]any

// Block is the CPU-side staging copy of one GPU uniform block: its reflected layout,
// the handle issued by the graphics context, and the packed bytes awaiting upload.
type Block struct {
	layout shader.BlockLayout
	handle renderer.BlockHandle
	data   []byte
}

// newBlock creates a zeroed staging block.
func newBlock(layout shader.BlockLayout, handle renderer.BlockHandle) *Block {
	return &Block{
		layout: layout,
		handle: handle,
		data:   make([]byte, layout.Size),
	}
}

// Name returns the block name, e.g. "Lights".
func (b *Block) Name() string { return b.layout.Name }

// Layout returns the reflected layout of the block.
func (b *Block) Layout() shader.BlockLayout { return b.layout }

// Handle returns the GPU handle of the block.
func (b *Block) Handle() renderer.BlockHandle { return b.handle }

// Data returns the staged bytes. The slice is owned by the block.
func (b *Block) Data() []byte { return b.data }

// Reset zeroes the staged bytes.
func (b *Block) Reset() {
	clear(b.data)
}

// Stage packs values into the staged bytes at their members' offsets. Names the block
// does not declare are skipped, since compilers strip unused members. Staging is all or
// nothing: on error the staged bytes are unchanged. Nothing reaches the GPU until the
// block is pushed through Store.Update.
//
// Parameters:
//   - values: member name to value
//
// Returns:
//   - error: ErrFieldSize or ErrUnsupportedValue (wrapped with the member name)
func (b *Block) Stage(values Values) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	// Pack everything first so a failing member leaves the staged bytes untouched.
	type stagedField struct {
		offset uint64
		packed []byte
	}
	staged := make([]stagedField, 0, len(names))
	for _, name := range names {
		field, ok := b.layout.Field(name)
		if !ok {
			continue
		}
		packed, err := pack(values[name])
		if err != nil {
			return fmt.Errorf("stage %s.%s: %w", b.layout.Name, name, err)
		}
		if uint64(len(packed)) != field.Size {
			return fmt.Errorf("stage %s.%s: %w: got %d bytes, want %d", b.layout.Name, name, ErrFieldSize, len(packed), field.Size)
		}
		staged = append(staged, stagedField{offset: field.Offset, packed: packed})
	}
	for _, f := range staged {
		copy(b.data[f.offset:], f.packed)
	}
	return nil
}

// pack converts a supported value to little-endian bytes.
//
// Parameters:
//   - value: the value to pack
//
// Returns:
//   - []byte: the packed bytes
//   - error: ErrUnsupportedValue for unknown types
func pack(value any) ([]byte, error) {
	switch v := value.(type) {
	case float32:
		return packFloats(v), nil
	case int32:
		return binary.LittleEndian.AppendUint32(nil, uint32(v)), nil
	case uint32:
		return binary.LittleEndian.AppendUint32(nil, v), nil
	case bool:
		if v {
			return binary.LittleEndian.AppendUint32(nil, 1), nil
		}
		return binary.LittleEndian.AppendUint32(nil, 0), nil
	case math32.Vector2:
		return packFloats(v.X, v.Y), nil
	case math32.Vector3:
		return packFloats(v.X, v.Y, v.Z), nil
	case math32.Vector4:
		return packFloats(v.X, v.Y, v.Z, v.W), nil
	case math32.Matrix4:
		return packFloats(v[:]...), nil
	case [2]float32:
		return packFloats(v[:]...), nil
	case [3]float32:
		return packFloats(v[:]...), nil
	case [4]float32:
		return packFloats(v[:]...), nil
	case [16]float32:
		return packFloats(v[:]...), nil
	case []float32:
		return packFloats(v...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// packFloats encodes float32 values as consecutive little-endian words.
func packFloats(fs ...float32) []byte {
	buf := make([]byte, 4*len(fs))
	for i, f := range fs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
