package movement

// anchored reports whether this controller currently follows another
// entity's anchor slot instead of local movement controls.
func (c *Controller) anchored() bool { return c.anchorOther.Get() != "" }

// SetAnchorState attaches this controller to another entity's slot. Passing
// an empty otherID clears the anchor. Fails with ErrInvalidAnchor when the
// slot is already claimed by a different entity.
func (c *Controller) SetAnchorState(otherID, slot string) error {
	if err := c.requireWorld(); err != nil {
		return err
	}
	if otherID == "" {
		c.anchorOther.Set("")
		c.anchorSlot.Set("")
		return nil
	}
	if c.world.AnchorOccupied(otherID, slot, c.id) {
		return ErrInvalidAnchor
	}
	c.anchorOther.Set(otherID)
	c.anchorSlot.Set(slot)
	return nil
}

// AnchorState reports the currently held anchor, if any.
func (c *Controller) AnchorState() (otherID, slot string, ok bool) {
	other := c.anchorOther.Get()
	if other == "" {
		return "", "", false
	}
	return other, c.anchorSlot.Get(), true
}

// tickAnchorSlave snaps position to the anchor target's slot, or resets the
// anchor when the target entity is gone.
func (c *Controller) tickAnchorSlave() {
	other, slot, ok := c.AnchorState()
	if !ok || c.world == nil {
		return
	}
	pos, found := c.world.AnchorTarget(other, slot)
	if !found {
		c.anchorOther.Set("")
		c.anchorSlot.Set("")
		return
	}
	c.posX.Set(pos.X)
	c.posY.Set(pos.Y)
}
