package systems

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const gridSpacing = 10.0

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// view projects world points onto the screen for one frame.
type view struct {
	mat    mgl64.Mat4
	focal  float64
	cx, cy float64
	near   float64
}

func newView(camera *components.CameraData, width, height int) view {
	eye, center := camera.Position, camera.Target
	if eye.Sub(center).Len() < 1e-9 {
		center = center.Add(mgl64.Vec3{0, 0, -1})
	}
	fov := mgl64.DegToRad(cfg.Camera.FieldOfView)
	return view{
		mat:   mgl64.LookAtV(eye, center, mgl64.Vec3{0, 1, 0}),
		focal: float64(height) / 2 / math.Tan(fov/2),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
		near:  cfg.Camera.Near,
	}
}

// toView transforms a world point into camera space, where -Z is forward.
func (v view) toView(p mgl64.Vec3) mgl64.Vec3 {
	return v.mat.Mul4x1(p.Vec4(1)).Vec3()
}

// project maps a camera-space point to screen coordinates.
func (v view) project(p mgl64.Vec3) (x, y float64, ok bool) {
	depth := -p.Z()
	if depth < v.near {
		return 0, 0, false
	}
	return v.cx + p.X()*v.focal/depth, v.cy - p.Y()*v.focal/depth, true
}

// clipNear cuts a camera-space polygon against the near plane.
func (v view) clipNear(poly []mgl64.Vec3) []mgl64.Vec3 {
	inside := func(p mgl64.Vec3) bool { return -p.Z() >= v.near }
	var out []mgl64.Vec3
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		if inside(cur) {
			if !inside(prev) {
				out = append(out, v.intersectNear(prev, cur))
			}
			out = append(out, cur)
		} else if inside(prev) {
			out = append(out, v.intersectNear(prev, cur))
		}
	}
	return out
}

func (v view) intersectNear(a, b mgl64.Vec3) mgl64.Vec3 {
	t := (-v.near - a.Z()) / (b.Z() - a.Z())
	return a.Add(b.Sub(a).Mul(t))
}

// DrawWorld renders the field from the camera rig.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Sky)

	camera := getCamera(ecs)
	if camera == nil {
		return
	}
	v := newView(camera, screen.Bounds().Dx(), screen.Bounds().Dy())
	b := cfg.World.HalfExtent()

	drawGround(screen, v, b)
	for i := -b + gridSpacing; i < b; i += gridSpacing {
		drawWorldLine(screen, v, mgl64.Vec3{i, 0, -b}, mgl64.Vec3{i, 0, b}, 1, gridColor())
		drawWorldLine(screen, v, mgl64.Vec3{-b, 0, i}, mgl64.Vec3{b, 0, i}, 1, gridColor())
	}
	corners := [...]mgl64.Vec3{{-b, 0, -b}, {b, 0, -b}, {b, 0, b}, {-b, 0, b}}
	for i := range corners {
		drawWorldLine(screen, v, corners[i], corners[(i+1)%len(corners)], 4, cfg.Palette.Boundary)
	}

	drawActors(ecs, screen, v)
}

type billboard struct {
	depth  float64
	x, y   float64
	radius float64
	color  color.RGBA
	facing *mgl64.Vec3 // screen-space tip of the heading marker
}

func drawActors(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	var boards []billboard

	add := func(position mgl64.Vec3, radius float64, clr color.RGBA, facing *float64) {
		p := v.toView(position)
		x, y, ok := v.project(p)
		if !ok {
			return
		}
		bb := billboard{
			depth:  -p.Z(),
			x:      x,
			y:      y,
			radius: radius * v.focal / -p.Z(),
			color:  clr,
		}
		if facing != nil {
			tip := position.Add(mgl64.Vec3{math.Sin(*facing), 0, math.Cos(*facing)}.Mul(radius * 2))
			if tx, ty, ok := v.project(v.toView(tip)); ok {
				bb.facing = &mgl64.Vec3{tx, ty, 0}
			}
		}
		boards = append(boards, bb)
	}

	components.Obstacle.Each(ecs.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)
		clr := cfg.Palette.Rock
		if entry.HasComponent(tags.Tree) {
			clr = cfg.Palette.Tree
		}
		add(o.Position, o.Radius, clr, nil)
	})
	tags.Rat.Each(ecs.World, func(entry *donburi.Entry) {
		a := components.Actor.Get(entry)
		facing := a.Facing
		add(a.Position, a.Radius, cfg.Palette.Rat, &facing)
	})
	if entry, ok := tags.Player.First(ecs.World); ok {
		a := components.Actor.Get(entry)
		facing := a.Facing
		add(a.Position, a.Radius, cfg.Palette.Player, &facing)
	}

	// Painter's order: far to near.
	slices.SortFunc(boards, func(a, b billboard) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, bb := range boards {
		r := float32(math.Max(bb.radius, 1))
		vector.FillCircle(screen, float32(bb.x), float32(bb.y), r, bb.color, true)
		if bb.facing != nil {
			vector.StrokeLine(screen, float32(bb.x), float32(bb.y), float32(bb.facing.X()), float32(bb.facing.Y()), 2, cfg.Palette.Facing, true)
		}
	}
}

func drawGround(screen *ebiten.Image, v view, b float64) {
	poly := []mgl64.Vec3{
		v.toView(mgl64.Vec3{-b, 0, -b}),
		v.toView(mgl64.Vec3{b, 0, -b}),
		v.toView(mgl64.Vec3{b, 0, b}),
		v.toView(mgl64.Vec3{-b, 0, b}),
	}
	poly = v.clipNear(poly)
	if len(poly) < 3 {
		return
	}

	clr := cfg.Palette.Ground
	vs := make([]ebiten.Vertex, 0, len(poly))
	for _, p := range poly {
		x, y, _ := v.project(p)
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		})
	}
	is := make([]uint16, 0, (len(poly)-2)*3)
	for i := 1; i < len(poly)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vs, is, solidImage(), &ebiten.DrawTrianglesOptions{})
}

func drawWorldLine(screen *ebiten.Image, v view, a, b mgl64.Vec3, width float32, clr color.Color) {
	pa, pb := v.toView(a), v.toView(b)
	aIn, bIn := -pa.Z() >= v.near, -pb.Z() >= v.near
	switch {
	case !aIn && !bIn:
		return
	case !aIn:
		pa = v.intersectNear(pa, pb)
	case !bIn:
		pb = v.intersectNear(pa, pb)
	}
	x0, y0, _ := v.project(pa)
	x1, y1, _ := v.project(pb)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

func gridColor() color.RGBA {
	g := cfg.Palette.Ground
	darken := func(c uint8) uint8 { return uint8(int(c) * 9 / 10) }
	return color.RGBA{R: darken(g.R), G: darken(g.G), B: darken(g.B), A: 255}
}

func solidImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
