package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/camera"
)

// Preset is a ready-to-render scene with its camera and image size
type Preset struct {
	Scene  *Scene
	Camera camera.Config
	Width  int // Image width in pixels
	Height int // Image height in pixels
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builtin struct {
	info  SceneInfo
	build func() (*Preset, error)
}

var builtins = map[string]builtin{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Every primitive type on a floor, lit by directional, point and spot lights"},
		build: NewDefaultScene,
	},
	"sphere": {
		info:  SceneInfo{ID: "sphere", DisplayName: "Sphere", Description: "A single shiny sphere under a spot light"},
		build: NewSphereScene,
	},
	"triangles": {
		info:  SceneInfo{ID: "triangles", DisplayName: "Triangles", Description: "Two triangles and a sphere lit by a point light"},
		build: NewTrianglesScene,
	},
}

// ListBuiltins returns the built-in scenes sorted by ID
func ListBuiltins() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Preset, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", id)
	}
	preset, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return preset, nil
}
