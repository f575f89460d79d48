package uniform

// Names of the uniform blocks every scene material must declare.
const (
	BlockLights     = "Lights"
	BlockPointLight = "PointLight"
	BlockProjection = "Projection"
	BlockView       = "View"
)

// RequiredBlocks lists the block names a material's program layout must provide, in
// allocation order.
var RequiredBlocks = []string{BlockLights, BlockPointLight, BlockProjection, BlockView}

// Set is the per-material bundle of uniform blocks the scene keeps in sync.
type Set struct {
	// Lights holds one slot per light kind (ambient, directional, point).
	Lights *Block
	// PointLight is the vertex-stage block carrying the point light position.
	PointLight *Block
	// Projection holds the projection matrix.
	Projection *Block
	// View holds the camera world position.
	View *Block
}

// Blocks returns the set's blocks in allocation order.
func (s *Set) Blocks() []*Block {
	return []*Block{s.Lights, s.PointLight, s.Projection, s.View}
}

// Block returns the block with the given name, or nil.
func (s *Set) Block(name string) *Block {
	switch name {
	case BlockLights:
		return s.Lights
	case BlockPointLight:
		return s.PointLight
	case BlockProjection:
		return s.Projection
	case BlockView:
		return s.View
	}
	return nil
}
