package race

import "fmt"

// applyCollisions drains the collision queue and applies one point of damage
// per contact-begin event involving the player. There is no cooldown.
func (c *Controller) applyCollisions(s *Session, h Host) error {
	health, err := text(h, HealthTextLabel)
	if err != nil {
		return err
	}

	for _, ev := range h.DrainCollisions() {
		if !ev.Involves(PlayerLabel) || ev.State == CollisionEnd {
			continue
		}
		s.Hits++
		if s.Health > 0 {
			s.Health--
			health.Value = fmt.Sprintf("Health: %d", s.Health)
			h.PlaySFX(SfxImpact, c.cfg.Audio.SfxVolume)
			c.logger.Debug("player hit", "with", other(ev, PlayerLabel), "health", s.Health)
		}
	}
	return nil
}

// other returns the participant that is not label.
func other(ev CollisionEvent, label string) string {
	if ev.Pair[0] == label {
		return ev.Pair[1]
	}
	return ev.Pair[0]
}
