package race

import "math"

// scroll moves roadlines and the obstacle left and recycles the ones that
// were already past their exit threshold at the start of the tick.
func (c *Controller) scroll(h Host) {
	step := c.cfg.Physics.RoadSpeed * h.Delta()
	road := c.cfg.Road
	obs := c.cfg.Obstacle

	for _, sp := range h.Sprites() {
		switch sp.Kind {
		case KindRoadline:
			if sp.X < road.ExitX {
				sp.X += road.WrapDistance
			} else {
				sp.X -= step
			}
		case KindObstacle:
			if sp.X < obs.ExitX {
				sp.X = c.respawnX()
			} else {
				sp.X -= step
			}
		}
	}
}

// respawnX draws a uniform position in [RespawnMin, RespawnMax).
func (c *Controller) respawnX() float64 {
	lo, hi := c.cfg.Obstacle.RespawnMin, c.cfg.Obstacle.RespawnMax
	x := lo + c.rng.Float64()*(hi-lo)
	if x >= hi {
		x = math.Nextafter(hi, lo)
	}
	return x
}
