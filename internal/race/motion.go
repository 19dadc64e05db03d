package race

// JumpOffset returns the height above the jump origin t seconds into a jump
// of peak height and total duration. It is 0 at t=0 and t=duration and
// equals height at duration/2.
func JumpOffset(t, height, duration float64) float64 {
	return -(4*height/(duration*duration))*t*t + (4*height/duration)*t
}

// updatePlayer moves the player along the jump arc or lets it fall to the ground.
func (c *Controller) updatePlayer(s *Session, player *Sprite, h Host) {
	phys := c.cfg.Physics
	dt := h.Delta()

	if phys.ResetJumpEachTick {
		s.Motion = Motion{}
	}
	m := &s.Motion

	if h.Pressed(KeyJump) && !m.Jumping {
		m.Jumping = true
		m.JumpElapsed = 0
		m.JumpOriginY = player.Y
		c.logger.Debug("jump", "origin", player.Y)
	}

	if m.Jumping {
		m.JumpElapsed += dt
		if m.JumpElapsed >= phys.JumpDuration {
			// Land back on the origin and hand over to falling.
			player.Y = m.JumpOriginY
			*m = Motion{}
			return
		}
		player.Y = m.JumpOriginY + JumpOffset(m.JumpElapsed, phys.JumpHeight, phys.JumpDuration)
		return
	}

	player.Y -= phys.FallSpeed * dt
	if player.Y <= phys.GroundY {
		player.Y = phys.GroundY
	}
}
