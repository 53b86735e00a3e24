package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RayTracer shades primary rays with the local Phong model: ambient, emission,
// and a diffuse plus specular term per light. Lights are never occluded.
type RayTracer struct {
	scene *scene.Scene
}

// NewRayTracer creates a ray tracer for a scene. The scene must not change while tracing.
func NewRayTracer(s *scene.Scene) (*RayTracer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &RayTracer{scene: s}, nil
}

// TraceRay returns the color seen along the ray
func (rt *RayTracer) TraceRay(ray core.Ray) core.Color {
	color, _ := rt.trace(ray)
	return color
}

// trace returns the color along the ray and whether anything was hit
func (rt *RayTracer) trace(ray core.Ray) (core.Color, bool) {
	gp, ok := geometry.ClosestGeoPoint(ray, rt.scene.Geometries.FindIntersections(ray))
	if !ok {
		return rt.scene.Background, false
	}
	return rt.calcColor(gp, ray), true
}

// calcColor adds the scene ambient light to the local effects at the hit
func (rt *RayTracer) calcColor(gp geometry.GeoPoint, ray core.Ray) core.Color {
	return rt.scene.Ambient.Intensity().Add(rt.calcLocalEffects(gp, ray))
}

// calcLocalEffects returns the emission plus the diffuse and specular light of every
// source on the same side of the surface as the viewer
func (rt *RayTracer) calcLocalEffects(gp geometry.GeoPoint, ray core.Ray) core.Color {
	color := gp.Geometry.Emission()
	v := ray.Direction
	n := gp.Geometry.Normal(gp.Point)

	// Grazing ray (or undefined normal): no light contribution
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return color
	}

	mat := gp.Geometry.Material()
	for _, light := range rt.scene.Lights {
		l := light.DirectionAt(gp.Point)
		nl := core.AlignZero(n.Dot(l))
		// sign(nl) == sign(nv)
		if nl*nv > 0 {
			iL := light.IntensityAt(gp.Point)
			color = color.Add(
				iL.ScaleBy(diffusive(mat, nl)),
				iL.ScaleBy(specular(mat, n, l, nl, v)),
			)
		}
	}
	return color
}

// diffusive returns kD·|n·l|
func diffusive(mat material.Material, nl float64) core.Coefficients {
	return mat.KD.Scale(math.Abs(nl))
}

// specular returns kS·max(0, -v·r)^shininess with r the reflection of l about n
func specular(mat material.Material, n, l core.Vec3, nl float64, v core.Vec3) core.Coefficients {
	r := l.Subtract(n.Multiply(2 * nl))
	minusVR := core.AlignZero(-v.Dot(r))
	if minusVR <= 0 {
		return core.Coefficients{}
	}
	return mat.KS.Scale(math.Pow(minusVR, float64(mat.Shininess)))
}
