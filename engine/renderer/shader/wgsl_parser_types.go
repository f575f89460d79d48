package shader

// wgslTypeLayout holds the byte size and alignment for a WGSL type per the WGSL specification.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField represents a single field extracted from a WGSL struct during parsing
type parsedField struct {
	name     string
	typeName string
}

// parsedStruct represents a WGSL struct block extracted during parsing
type parsedStruct struct {
	name   string
	fields []parsedField
}

// structLayout is a resolved struct: its overall layout plus the offset of every direct member.
type structLayout struct {
	wgslTypeLayout
	fields  []parsedField
	offsets []uint64
	sizes   []uint64
}

// uniformDecl is a single @group(N) @binding(M) var<uniform> declaration.
type uniformDecl struct {
	group    uint32
	binding  uint32
	varName  string
	typeName string
}
