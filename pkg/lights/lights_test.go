package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func assertColorNear(t *testing.T, expected, got core.Color) {
	t.Helper()
	const tolerance = 1e-9
	if math.Abs(got.R-expected.R) > tolerance ||
		math.Abs(got.G-expected.G) > tolerance ||
		math.Abs(got.B-expected.B) > tolerance {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func TestAmbientLight(t *testing.T) {
	ambient := NewAmbientLight(core.NewColor(255, 191, 191), core.NewCoefficients(1, 0.5, 0))
	assertColorNear(t, core.NewColor(255, 95.5, 0), ambient.Intensity())

	if NoAmbient.Intensity() != core.Black {
		t.Errorf("Expected black NoAmbient, got %v", NoAmbient.Intensity())
	}
}

func TestDirectionalLight(t *testing.T) {
	light, err := NewDirectionalLight(core.NewColor(100, 100, 100), core.NewVec3(0, 0, -5))
	if err != nil {
		t.Fatalf("NewDirectionalLight: %v", err)
	}
	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected directional type, got %s", light.Type())
	}

	for _, p := range []core.Vec3{core.Origin, core.NewVec3(100, -3, 7)} {
		assertColorNear(t, core.NewColor(100, 100, 100), light.IntensityAt(p))
		if light.DirectionAt(p) != core.NewVec3(0, 0, -1) {
			t.Errorf("Expected unit direction (0,0,-1), got %v", light.DirectionAt(p))
		}
	}

	if _, err := NewDirectionalLight(core.Black, core.Vec3{}); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPointLight_Attenuation(t *testing.T) {
	position := core.NewVec3(0, 0, 0)
	point := core.NewVec3(0, 3, 4) // distance 5

	tests := []struct {
		name        string
		attenuation Attenuation
		expected    float64
	}{
		{"default has no falloff", DefaultAttenuation(), 100},
		{"constant", Attenuation{Constant: 2}, 50},
		{"linear", Attenuation{Constant: 1, Linear: 1}, 100.0 / 6},
		{"quadratic", Attenuation{Constant: 1, Quadratic: 1}, 100.0 / 26},
		{"all", Attenuation{Constant: 1, Linear: 0.2, Quadratic: 0.04}, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := NewPointLight(core.NewColor(100, 100, 100), position, tt.attenuation)
			if err != nil {
				t.Fatalf("NewPointLight: %v", err)
			}
			assertColorNear(t, core.NewColor(tt.expected, tt.expected, tt.expected), light.IntensityAt(point))
		})
	}
}

func TestPointLight_InvalidAttenuation(t *testing.T) {
	for _, a := range []Attenuation{{}, {Constant: -1}, {Constant: 1, Linear: -0.1}} {
		if _, err := NewPointLight(core.Black, core.Origin, a); !errors.Is(err, core.ErrInvalidGeometry) {
			t.Errorf("attenuation %+v: expected ErrInvalidGeometry, got %v", a, err)
		}
	}
}

func TestPointLight_DirectionAt(t *testing.T) {
	light, err := NewPointLight(core.NewColor(1, 1, 1), core.NewVec3(1, 1, 1), DefaultAttenuation())
	if err != nil {
		t.Fatalf("NewPointLight: %v", err)
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected point type, got %s", light.Type())
	}

	dir := light.DirectionAt(core.NewVec3(1, 1, -4))
	if dir != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected (0,0,-1), got %v", dir)
	}
	if !light.DirectionAt(light.Position()).IsZero() {
		t.Error("Expected no direction at the light position")
	}
}

func TestSpotLight_IntensityAt(t *testing.T) {
	// Spot at the origin shining down -Z
	light, err := NewSpotLight(core.NewColor(100, 100, 100), core.Origin, core.NewVec3(0, 0, -2), DefaultAttenuation(), 1)
	if err != nil {
		t.Fatalf("NewSpotLight: %v", err)
	}
	if light.Type() != LightTypeSpot {
		t.Errorf("Expected spot type, got %s", light.Type())
	}

	cos45 := math.Sqrt2 / 2
	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"on the beam", core.NewVec3(0, 0, -3), 100},
		{"45 degrees off", core.NewVec3(1, 0, -1), 100 * cos45},
		{"perpendicular", core.NewVec3(1, 0, 0), 0},
		{"behind", core.NewVec3(0, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColorNear(t, core.NewColor(tt.expected, tt.expected, tt.expected), light.IntensityAt(tt.point))
		})
	}
}

func TestSpotLight_NarrowBeam(t *testing.T) {
	light, err := NewSpotLight(core.NewColor(100, 100, 100), core.Origin, core.NewVec3(0, 0, -1),
		Attenuation{Constant: 1, Quadratic: 1}, 4)
	if err != nil {
		t.Fatalf("NewSpotLight: %v", err)
	}

	// distance √2, cos 45° to the 4th power = 1/4
	expected := 100.0 / 3 / 4
	assertColorNear(t, core.NewColor(expected, expected, expected), light.IntensityAt(core.NewVec3(1, 0, -1)))

	if _, err := NewSpotLight(core.Black, core.Origin, core.NewVec3(0, 0, -1), DefaultAttenuation(), -1); !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for negative narrow beam, got %v", err)
	}
}

func TestLightSources_Interface(t *testing.T) {
	var _ LightSource = &DirectionalLight{}
	var _ LightSource = &PointLight{}
	var _ LightSource = &SpotLight{}
}
