// Package movement implements the per-entity movement controller: master-side
// control integration against world geometry, slave-side interpolation, and
// anchor/path-follow semantics shared by players, monsters, and projectiles.
package movement

import (
	"errors"
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/netelem"
	"sandboxcore/server/internal/world"
)

// ErrWorldRequired is returned by any mutator called before Init.
var ErrWorldRequired = errors.New("movement: world reference required")

// ErrInvalidAnchor is returned by SetAnchorState when the requested slot is
// already occupied by another entity.
var ErrInvalidAnchor = errors.New("movement: anchor slot already occupied")

// Config holds the tunable parameters read from an entity's
// movementSettings configuration block.
type Config struct {
	Radius            float64
	WalkSpeed         float64
	RunSpeed          float64
	Mass              float64
	GravityMultiplier float64
	JumpSpeed         float64
	ArriveRadius      float64
}

// Controls captures a single tick's worth of movement intent. The entity
// wrapper sets this once per frame before calling TickMaster; unless
// AutoClearControls is disabled, TickMaster resets it to the zero value
// after integrating.
type Controls struct {
	Move   world.Vec2 // unnormalized intent direction
	Run    bool
	Face   core.Option[float64] // desired facing override, radians
	Jump   bool
	Crouch bool
	Fly    bool

	PathMove core.Option[PathMoveRequest]
}

// PathMoveRequest is the per-tick request surface for pathMove.
type PathMoveRequest struct {
	Target world.Vec2
	Run    bool
	Params PathMoveParams
}

// PathMoveParams overrides the default arrival radius for a single request.
type PathMoveParams struct {
	ArriveRadius float64
}

// WorldRef is the minimal surface a movement controller needs from its
// containing world: geometry for collision/pathing and anchor target
// lookup. Callers supply an adapter rather than a concrete world type.
type WorldRef interface {
	Dimensions() (float64, float64)
	Obstacles() []world.Obstacle
	OtherActors(excludeID string) []world.PathActor
	AnchorTarget(otherID, slot string) (world.Vec2, bool)
	AnchorOccupied(otherID, slot, exceptID string) bool
}

// Controller is the movement controller for a single entity. It owns the
// position/velocity/rotation/facing/anchor net-elements and the transient,
// non-replicated collision and path-following state.
type Controller struct {
	id      string
	counter *netelem.VersionCounter
	cfg     Config

	group *netelem.Group
	posX  *netelem.Float
	posY  *netelem.Float
	velX  *netelem.Float
	velY  *netelem.Float
	rot   *netelem.Float
	face  *netelem.String

	anchorOther *netelem.String
	anchorSlot  *netelem.String

	world             WorldRef
	controls          Controls
	autoClearControls bool

	path world.PlayerPathState
	tick uint64
}

// New constructs a controller and its net-element subtree. id is used only
// for path-blocker self-exclusion and anchor occupancy checks, never put on
// the wire directly (the entity's own id leaf covers that).
func New(id string, counter *netelem.VersionCounter, cfg Config) *Controller {
	c := &Controller{
		id:                id,
		counter:           counter,
		cfg:               cfg,
		autoClearControls: true,
	}
	c.group = netelem.NewGroup()
	c.posX = netelem.NewFloat(counter)
	c.posY = netelem.NewFloat(counter)
	c.velX = netelem.NewFloat(counter)
	c.velY = netelem.NewFloat(counter)
	c.rot = netelem.NewFloat(counter)
	c.face = netelem.NewString(counter)
	c.anchorOther = netelem.NewString(counter)
	c.anchorSlot = netelem.NewString(counter)

	c.posX.EnableInterpolation(100 * time.Millisecond)
	c.posY.EnableInterpolation(100 * time.Millisecond)
	c.rot.EnableInterpolation(100 * time.Millisecond)

	c.group.Add(c.posX)
	c.group.Add(c.posY)
	c.group.Add(c.velX)
	c.group.Add(c.velY)
	c.group.Add(c.rot)
	c.group.Add(c.face)
	c.group.Add(c.anchorOther)
	c.group.Add(c.anchorSlot)

	c.path.ArriveRadius = cfg.ArriveRadius
	return c
}

// Group returns the net-element subtree, to be added as a child of the
// owning entity's root group.
func (c *Controller) Group() *netelem.Group { return c.group }

// Init binds the controller to its containing world, enabling mutators.
func (c *Controller) Init(w WorldRef) { c.world = w }

// Uninit drops the world reference; mutators fail again until Init.
func (c *Controller) Uninit() { c.world = nil }

func (c *Controller) requireWorld() error {
	if c.world == nil {
		return ErrWorldRequired
	}
	return nil
}

func (c *Controller) Position() world.Vec2 { return world.Vec2{X: c.posX.Get(), Y: c.posY.Get()} }
func (c *Controller) Velocity() world.Vec2 { return world.Vec2{X: c.velX.Get(), Y: c.velY.Get()} }
func (c *Controller) Rotation() float64    { return c.rot.Get() }
func (c *Controller) Facing() string       { return c.face.Get() }
func (c *Controller) Radius() float64      { return c.cfg.Radius }

// SetPosition is the master-side position write.
func (c *Controller) SetPosition(pos world.Vec2) error {
	if err := c.requireWorld(); err != nil {
		return err
	}
	c.posX.Set(pos.X)
	c.posY.Set(pos.Y)
	return nil
}

// SetVelocity is the master-side velocity write.
func (c *Controller) SetVelocity(v world.Vec2) error {
	if err := c.requireWorld(); err != nil {
		return err
	}
	c.velX.Set(v.X)
	c.velY.Set(v.Y)
	return nil
}

// SetRotation is the master-side rotation write, in radians.
func (c *Controller) SetRotation(radians float64) error {
	if err := c.requireWorld(); err != nil {
		return err
	}
	c.rot.Set(radians)
	return nil
}

// DisableAutoClear stops TickMaster from resetting Controls after each
// integration, for callers that manage their own control lifetime.
func (c *Controller) DisableAutoClear() { c.autoClearControls = false }

// SetControls installs this tick's movement intent.
func (c *Controller) SetControls(controls Controls) { c.controls = controls }

// TickSlave only advances interpolation and anchor slaving.
func (c *Controller) TickSlave(dt time.Duration) {
	c.group.Tick(dt)
	c.tickAnchorSlave()
}
