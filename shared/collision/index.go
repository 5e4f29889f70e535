// Package collision answers "does a circle on the ground plane touch an
// obstacle?" for the chase field. Obstacles are indexed in a resolv space
// for broadphase; the final answer is always the exact planar circle test.
package collision

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Kind distinguishes obstacle types.
type Kind int

const (
	Tree Kind = iota
	Rock
)

func (k Kind) String() string {
	switch k {
	case Tree:
		return "tree"
	case Rock:
		return "rock"
	}
	return "unknown"
}

// ResolvObstacle tags obstacle bodies inside the space.
const ResolvObstacle = "obstacle"

// spaceMargin is how far the resolv space reaches past the field edge, in world units.
const spaceMargin = 16.0

// Obstacle is a static circular blocker on the XZ plane.
type Obstacle struct {
	Kind     Kind
	Position mgl64.Vec3
	Radius   float64
}

// Index holds every obstacle of the field.
type Index struct {
	Trees []Obstacle
	Rocks []Obstacle

	halfExtent float64
	limit      float64
	scale      float64
	space      *resolv.Space
	probe      *resolv.Object
}

// NewIndex creates an empty index for a field spanning ±halfExtent.
// limit bounds FindClearPosition candidates on each axis.
func NewIndex(halfExtent, limit, scale float64, cellSize int) *Index {
	if scale <= 0 {
		scale = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	size := int(math.Ceil((halfExtent + spaceMargin) * 2 * scale))
	idx := &Index{
		halfExtent: halfExtent,
		limit:      limit,
		scale:      scale,
		space:      resolv.NewSpace(size, size, cellSize, cellSize),
	}
	idx.probe = resolv.NewObject(0, 0, 1, 1)
	idx.space.Add(idx.probe)
	return idx
}

// Limit returns the per-axis bound for relocation candidates.
func (idx *Index) Limit() float64 {
	return idx.limit
}

// Add registers an obstacle. Negative radii are treated as zero.
func (idx *Index) Add(o Obstacle) {
	if o.Radius < 0 {
		o.Radius = 0
	}
	switch o.Kind {
	case Rock:
		idx.Rocks = append(idx.Rocks, o)
	default:
		idx.Trees = append(idx.Trees, o)
	}

	x, z, w, h := idx.box(o.Position, o.Radius)
	body := resolv.NewObject(x, z, w, h, ResolvObstacle)
	body.Data = o
	idx.space.Add(body)
}

// Len returns the number of obstacles.
func (idx *Index) Len() int {
	return len(idx.Trees) + len(idx.Rocks)
}

// Overlaps reports whether a circle of the given radius at position touches
// any obstacle. Only X and Z are considered.
func (idx *Index) Overlaps(position mgl64.Vec3, radius float64) bool {
	if radius < 0 {
		radius = 0
	}
	if !idx.inSpace(position, radius) {
		return idx.scan(position, radius)
	}

	x, z, w, h := idx.box(position, radius)
	idx.probe.X, idx.probe.Y = x, z
	idx.probe.W, idx.probe.H = w, h

	check := idx.probe.Check(0, 0, ResolvObstacle)
	if check == nil {
		return false
	}
	for _, body := range check.Objects {
		o, ok := body.Data.(Obstacle)
		if !ok {
			continue
		}
		if touches(o, position, radius) {
			return true
		}
	}
	return false
}

// FindClearPosition searches outward from start for a spot where a circle
// of the given radius fits. The eight probe directions are axis-aligned
// first, then diagonal, and are not normalised. Candidates outside the
// limit on either axis are skipped. Falls back to the origin.
func (idx *Index) FindClearPosition(start mgl64.Vec3, radius float64) mgl64.Vec3 {
	for dist := 2.0; dist <= 10; dist += 2 {
		for _, dir := range probeDirections {
			candidate := start.Add(dir.Mul(dist))
			if math.Abs(candidate.X()) > idx.limit || math.Abs(candidate.Z()) > idx.limit {
				continue
			}
			if !idx.Overlaps(candidate, radius) {
				return candidate
			}
		}
	}
	log.Debug("No clear position found, using origin", "x", start.X(), "z", start.Z(), "radius", radius)
	return mgl64.Vec3{}
}

var probeDirections = [...]mgl64.Vec3{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
	{1, 0, 1},
	{-1, 0, 1},
	{1, 0, -1},
	{-1, 0, -1},
}

func touches(o Obstacle, position mgl64.Vec3, radius float64) bool {
	dx := o.Position.X() - position.X()
	dz := o.Position.Z() - position.Z()
	return math.Sqrt(dx*dx+dz*dz) < radius+o.Radius
}

func (idx *Index) scan(position mgl64.Vec3, radius float64) bool {
	for _, o := range idx.Trees {
		if touches(o, position, radius) {
			return true
		}
	}
	for _, o := range idx.Rocks {
		if touches(o, position, radius) {
			return true
		}
	}
	return false
}

// box converts a circle into a resolv rectangle, padded by one unit on each
// side so edge-touching cells are always visited.
func (idx *Index) box(position mgl64.Vec3, radius float64) (x, y, w, h float64) {
	x = (position.X()-radius+idx.halfExtent+spaceMargin)*idx.scale - 1
	y = (position.Z()-radius+idx.halfExtent+spaceMargin)*idx.scale - 1
	w = radius*2*idx.scale + 2
	h = w
	return x, y, w, h
}

func (idx *Index) inSpace(position mgl64.Vec3, radius float64) bool {
	reach := idx.halfExtent + spaceMargin - radius - 1/idx.scale
	return math.Abs(position.X()) < reach && math.Abs(position.Z()) < reach
}
