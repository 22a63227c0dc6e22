package render

import "math"

// Go mirror of the fragment stage in internal/shader (FragmentSource). The
// software renderer and the tests evaluate gradients through these
// functions, so any change to the GLSL must land here too.

const tau = 2 * math.Pi

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func hash21(x, y float64) float64 {
	return fract(math.Sin(x*127.1+y*311.7) * 43758.5453123)
}

func gradDir(x, y float64) (float64, float64) {
	a := hash21(x, y) * tau
	return math.Cos(a), math.Sin(a)
}

// gnoise is 2D gradient noise, continuous with range roughly [-1, 1].
func gnoise(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	gax, gay := gradDir(ix, iy)
	gbx, gby := gradDir(ix+1, iy)
	gcx, gcy := gradDir(ix, iy+1)
	gdx, gdy := gradDir(ix+1, iy+1)

	a := gax*fx + gay*fy
	b := gbx*(fx-1) + gby*fy
	c := gcx*fx + gcy*(fy-1)
	d := gdx*(fx-1) + gdy*(fy-1)

	return (mix(mix(a, b, ux), mix(c, d, ux), uy)) * 1.41421356
}

// fbm sums 5 octaves of gnoise at halving amplitude and doubling frequency.
func fbm(x, y float64) float64 {
	sum := 0.0
	amp := 0.5
	for i := 0; i < 5; i++ {
		sum += amp * gnoise(x, y)
		x *= 2
		y *= 2
		amp *= 0.5
	}
	return sum
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// warpUV applies the selected distortion to a normalized coordinate.
// Horizontal displacement is divided by the aspect ratio so the distortion
// is visually isotropic on non-square surfaces.
func warpUV(ux, uy float64, snap *Snapshot, aspect float64) (float64, float64) {
	mode := snap.WarpMode
	amount := float64(snap.WarpAmount)
	size := float64(snap.WarpSize)
	t := float64(snap.Time)
	seed := float64(snap.Seed)

	if mode == 0 || amount <= 0 {
		return ux, uy
	}

	seedX := seed * 43.17
	seedY := seed * 17.43

	switch mode {
	case 5:
		cx := (ux - 0.5) * aspect
		cy := uy - 0.5
		r := math.Hypot(cx, cy)
		ang := amount * (r*size*3 + t*0.3)
		s, co := math.Sin(ang), math.Cos(ang)
		rx := cx*co - cy*s
		ry := cx*s + cy*co
		return rx/aspect + 0.5, ry + 0.5
	case 6:
		cx := (ux - 0.5) * aspect
		cy := uy - 0.5
		r := math.Hypot(cx, cy)
		theta := math.Atan2(cy, cx)
		r += math.Sin(r*size*12-t) * amount * 0.05
		return math.Cos(theta)*r/aspect + 0.5, math.Sin(theta)*r + 0.5
	}

	var dx, dy float64
	switch mode {
	case 1:
		phase := gnoise(ux*size*2+seedX, uy*size*2+seedY) * tau
		dx = math.Sin(uy*tau*size+t+phase) * amount * 0.05
		dy = math.Cos(ux*tau*size+t+phase) * amount * 0.05
	case 2:
		px := ux*size*2 + seedX + t*0.1
		py := uy*size*2 + seedY + t*0.1
		dx = gnoise(px, py) * amount * 0.1
		dy = gnoise(px+37.2, py+11.9) * amount * 0.1
	case 3:
		px := ux*size*1.5 + seedX + t*0.05
		py := uy*size*1.5 + seedY + t*0.05
		dx = fbm(px, py) * amount * 0.2
		dy = fbm(px+19.3, py+71.7) * amount * 0.2
	case 4:
		px := ux*size*1.5 + seedX + t*0.05
		py := uy*size*1.5 + seedY + t*0.05
		dx = (1 - math.Abs(fbm(px, py)) - 0.5) * amount * 0.3
		dy = (1 - math.Abs(fbm(px+19.3, py+71.7)) - 0.5) * amount * 0.3
	}
	return ux + dx/aspect, uy + dy
}

// shadePixel evaluates one pixel at device coordinates (x, y), origin
// top-left, and returns the final RGB in [0, 1].
func shadePixel(snap *Snapshot, x, y int) (float64, float64, float64) {
	w := float64(snap.Resolution[0])
	h := float64(snap.Resolution[1])
	ux := (float64(x) + 0.5) / w
	uy := (float64(y) + 0.5) / h
	aspect := w / h
	cx := ux - 0.5
	cy := uy - 0.5

	sx, sy := warpUV(ux, uy, snap, aspect)

	var accR, accG, accB, total float64
	r2 := float64(snap.Radius) * float64(snap.Radius)
	k := math.Max(0.001, float64(snap.Intensity))
	for i := 0; i < int(snap.PointCount) && i < MaxPoints; i++ {
		dx := (sx - float64(snap.Positions[i][0])) * aspect
		dy := sy - float64(snap.Positions[i][1])
		weight := math.Exp(-(dx*dx + dy*dy) / r2)
		weight = math.Pow(weight, k)
		accR += weight * float64(snap.Colors[i][0])
		accG += weight * float64(snap.Colors[i][1])
		accB += weight * float64(snap.Colors[i][2])
		total += weight
	}

	var cr, cg, cb float64
	if total > 1e-6 {
		cr, cg, cb = accR/total, accG/total, accB/total
	} else {
		cr, cg, cb = float64(Neutral[0]), float64(Neutral[1]), float64(Neutral[2])
	}

	vig := 1 - (cx*cx+cy*cy)*0.25
	cr *= vig
	cg *= vig
	cb *= vig

	if snap.GrainAmount > 0 {
		cell := math.Max(float64(snap.GrainSize), 1)
		fx := float64(x) + 0.5
		fy := h - (float64(y) + 0.5)
		seedOff := float64(snap.Seed) * 91.7
		g := (hash21(math.Floor(fx/cell)+seedOff, math.Floor(fy/cell)+seedOff) - 0.5) * float64(snap.GrainAmount)
		cr += g
		cg += g
		cb += g
	}

	return clamp01(cr), clamp01(cg), clamp01(cb)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
