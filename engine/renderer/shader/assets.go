package shader

import _ "embed"

// SceneBlocksSource is the canonical WGSL declaration of the Lights, PointLight,
// Projection and View uniform blocks. Programs that include it verbatim reflect
// to the layouts the scene stages into.
//
//go:embed assets/scene_blocks.wgsl
var SceneBlocksSource string
