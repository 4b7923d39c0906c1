package animator

import (
	"math"

	"sandboxcore/server/internal/netelem"
)

// Affine2 is a 2D affine transform in row-major form, matching Mat3F's
// convention in StarNetworkedAnimator.hpp: (a b tx; c d ty; 0 0 1).
type Affine2 struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the neutral transform.
func Identity() Affine2 { return Affine2{A: 1, D: 1} }

// Compose returns m applied after n (n first, then m), matching the
// animator's left-to-right config-order composition of transformation
// groups into a part's final transform.
func Compose(m, n Affine2) Affine2 {
	return Affine2{
		A:  m.A*n.A + m.B*n.C,
		B:  m.A*n.B + m.B*n.D,
		C:  m.C*n.A + m.D*n.C,
		D:  m.C*n.B + m.D*n.D,
		TX: m.A*n.TX + m.B*n.TY + m.TX,
		TY: m.C*n.TX + m.D*n.TY + m.TY,
	}
}

// transformationGroup is one named affine group. Its six components
// replicate individually so a receiver can reconstruct the matrix without
// a custom leaf type.
type transformationGroup struct {
	a, b, c, d, tx, ty *netelem.Float
}

func newTransformationGroup(counter *netelem.VersionCounter, group *netelem.Group) *transformationGroup {
	tg := &transformationGroup{
		a:  netelem.NewFloat(counter),
		b:  netelem.NewFloat(counter),
		c:  netelem.NewFloat(counter),
		d:  netelem.NewFloat(counter),
		tx: netelem.NewFloat(counter),
		ty: netelem.NewFloat(counter),
	}
	tg.reset()
	group.Add(tg.a)
	group.Add(tg.b)
	group.Add(tg.c)
	group.Add(tg.d)
	group.Add(tg.tx)
	group.Add(tg.ty)
	return tg
}

func (tg *transformationGroup) get() Affine2 {
	return Affine2{A: tg.a.Get(), B: tg.b.Get(), C: tg.c.Get(), D: tg.d.Get(), TX: tg.tx.Get(), TY: tg.ty.Get()}
}

func (tg *transformationGroup) set(m Affine2) {
	tg.a.Set(m.A)
	tg.b.Set(m.B)
	tg.c.Set(m.C)
	tg.d.Set(m.D)
	tg.tx.Set(m.TX)
	tg.ty.Set(m.TY)
}

func (tg *transformationGroup) reset() { tg.set(Identity()) }

func (tg *transformationGroup) translate(dx, dy float64) {
	tg.set(Compose(Affine2{A: 1, D: 1, TX: dx, TY: dy}, tg.get()))
}

func (tg *transformationGroup) rotate(angle float64, cx, cy float64) {
	tg.set(Compose(rotationAbout(angle, cx, cy), tg.get()))
}

func (tg *transformationGroup) scale(sx, sy, cx, cy float64) {
	tg.set(Compose(scaleAbout(sx, sy, cx, cy), tg.get()))
}

func (tg *transformationGroup) transform(a, b, c, d, tx, ty float64) {
	tg.set(Compose(Affine2{A: a, B: b, C: c, D: d, TX: tx, TY: ty}, tg.get()))
}

func rotationAbout(angle, cx, cy float64) Affine2 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Affine2{
		A: cos, B: -sin,
		C: sin, D: cos,
		TX: cx - cx*cos + cy*sin,
		TY: cy - cx*sin - cy*cos,
	}
}

func scaleAbout(sx, sy, cx, cy float64) Affine2 {
	return Affine2{
		A: sx, D: sy,
		TX: cx - cx*sx,
		TY: cy - cy*sy,
	}
}

// rotationGroup tracks a target angle the current angle chases at a fixed
// angular velocity, per the animator's rotation-group semantics.
type rotationGroup struct {
	target          *netelem.Float
	current         *netelem.Float
	angularVelocity float64
}

func newRotationGroup(counter *netelem.VersionCounter, angularVelocity float64, group *netelem.Group) *rotationGroup {
	rg := &rotationGroup{
		target:          netelem.NewFloat(counter),
		current:         netelem.NewFloat(counter),
		angularVelocity: angularVelocity,
	}
	group.Add(rg.target)
	group.Add(rg.current)
	return rg
}

func (rg *rotationGroup) rotate(targetAngle float64, immediate bool) {
	rg.target.Set(targetAngle)
	if immediate {
		rg.current.Set(targetAngle)
	}
}

func (rg *rotationGroup) tick(dt float64) {
	current := rg.current.Get()
	target := rg.target.Get()
	delta := wrapAngle(target - current)
	maxStep := rg.angularVelocity * dt
	if maxStep < 0 {
		maxStep = -maxStep
	}
	if delta > maxStep {
		delta = maxStep
	} else if delta < -maxStep {
		delta = -maxStep
	}
	rg.current.Set(wrapAngle(current + delta))
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
