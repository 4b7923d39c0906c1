package animator

import "sandboxcore/server/internal/netelem"

type light struct {
	active     *netelem.Bool
	x          *netelem.Float
	y          *netelem.Float
	color      *netelem.String // hex/name, kept opaque to this package
	pointAngle *netelem.Float
}

func newLight(counter *netelem.VersionCounter, group *netelem.Group) *light {
	l := &light{
		active:     netelem.NewBool(counter),
		x:          netelem.NewFloat(counter),
		y:          netelem.NewFloat(counter),
		color:      netelem.NewString(counter),
		pointAngle: netelem.NewFloat(counter),
	}
	group.Add(l.active)
	group.Add(l.x)
	group.Add(l.y)
	group.Add(l.color)
	group.Add(l.pointAngle)
	return l
}

func (l *light) setActive(active bool)      { l.active.Set(active) }
func (l *light) setPosition(x, y float64)   { l.x.Set(x); l.y.Set(y) }
func (l *light) setColor(color string)      { l.color.Set(color) }
func (l *light) setPointAngle(angle float64) { l.pointAngle.Set(angle) }
