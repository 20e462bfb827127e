package systems

import (
	"iter"
	"math"
	"slices"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
)

// VisionConfig holds the sampling resolution of frustums and peek cones.
type VisionConfig struct {
	FrustumStepDeg    float64 `yaml:"frustum_step_deg"`
	PeekFanDeg        float64 `yaml:"peek_fan_deg"`
	PeekSamplesPerDeg float64 `yaml:"peek_samples_per_deg"`
}

// DefaultVisionConfig returns the prototype resolution.
func DefaultVisionConfig() VisionConfig {
	return VisionConfig{
		FrustumStepDeg:    domain.FrustumStepDeg,
		PeekFanDeg:        domain.PeekFanDeg,
		PeekSamplesPerDeg: domain.PeekSamplesPerDeg,
	}
}

// Cone is an ordered fan of ray endpoints cast from Origin.
type Cone struct {
	Viewer domain.Cell
	Origin domain.Point
	Points []domain.Point
}

// Sighting is the answer of CanSee. From is the cell the successful ray
// started from: the viewer itself or one of its peek cells.
type Sighting struct {
	Seen     bool
	Distance float64
	From     domain.Cell
}

// Visibility answers line-of-sight questions over one grid.
type Visibility struct {
	grid   *domain.Grid
	tracer *Tracer
	cfg    VisionConfig
}

// NewVisibility creates the engine; non-positive config values fall back to defaults.
func NewVisibility(g *domain.Grid, cfg VisionConfig) *Visibility {
	def := DefaultVisionConfig()
	if cfg.FrustumStepDeg <= 0 {
		cfg.FrustumStepDeg = def.FrustumStepDeg
	}
	if cfg.PeekFanDeg <= 0 {
		cfg.PeekFanDeg = def.PeekFanDeg
	}
	if cfg.PeekSamplesPerDeg <= 0 {
		cfg.PeekSamplesPerDeg = def.PeekSamplesPerDeg
	}
	return &Visibility{grid: g, tracer: NewTracer(g), cfg: cfg}
}

// Grid returns the grid the engine traces against.
func (v *Visibility) Grid() *domain.Grid { return v.grid }

// Config returns the effective sampling resolution.
func (v *Visibility) Config() VisionConfig { return v.cfg }

// FrustumSeq lazily yields the 360° fan of hit points around the viewer's cell
// centre, ordered by increasing angle. Iterating twice recomputes it.
func (v *Visibility) FrustumSeq(viewer domain.Cell) iter.Seq[domain.Point] {
	return func(yield func(domain.Point) bool) {
		origin := v.grid.Center(viewer)
		n := int(math.Round(360 / v.cfg.FrustumStepDeg))
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			hit, err := v.tracer.CastAngle(origin, float64(i)*360/float64(n))
			if err != nil {
				continue
			}
			if !yield(hit.Point) {
				return
			}
		}
	}
}

// Frustum materialises FrustumSeq.
func (v *Visibility) Frustum(viewer domain.Cell) Cone {
	cone := Cone{
		Viewer: viewer,
		Origin: v.grid.Center(viewer),
		Points: slices.Collect(v.FrustumSeq(viewer)),
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "visibility_system",
		"viewer":    viewer,
		"rays":      len(cone.Points),
	}).Debug("Frustum computed.")
	return cone
}

// CanSee reports whether a ray from the viewer's cell centre reaches target
// before any wall. When it does not, each peek cell of the viewer is tried in
// order and the first success wins.
func (v *Visibility) CanSee(viewer domain.Cell, target domain.Point) Sighting {
	if s, ok := v.sightFrom(viewer, target); ok {
		return s
	}
	for _, pc := range v.PeekCells(viewer) {
		if s, ok := v.sightFrom(pc.Cell, target); ok {
			return s
		}
	}
	return Sighting{From: viewer}
}

func (v *Visibility) sightFrom(from domain.Cell, target domain.Point) (Sighting, bool) {
	origin := v.grid.Center(from)
	dist := origin.DistanceTo(target)
	if dist == 0 {
		return Sighting{Seen: true, From: from}, true
	}
	hit, err := v.tracer.Cast(origin, target.Sub(origin).Normalize())
	if err != nil || hit.Distance < dist {
		return Sighting{}, false
	}
	return Sighting{Seen: true, Distance: dist, From: from}, true
}

// ConeCache remembers the last frustum so renderers do not retrace 3600 rays a frame.
// IsDirty is raised on Invalidate or when the viewer moves.
type ConeCache struct {
	vis     *Visibility
	viewer  domain.Cell
	cone    Cone
	IsDirty bool
}

// NewConeCache creates an empty, dirty cache.
func NewConeCache(vis *Visibility) *ConeCache {
	return &ConeCache{vis: vis, IsDirty: true}
}

// Frustum returns the cached cone for viewer, recomputing it when stale.
func (c *ConeCache) Frustum(viewer domain.Cell) Cone {
	if c.IsDirty || viewer != c.viewer {
		c.viewer = viewer
		c.cone = c.vis.Frustum(viewer)
		c.IsDirty = false
	}
	return c.cone
}

// Invalidate forces the next Frustum call to retrace.
func (c *ConeCache) Invalidate() {
	c.IsDirty = true
}
