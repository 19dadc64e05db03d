package engine

import (
	"fmt"

	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/race"
)

// HUD text positions in world units.
const (
	healthTextX, healthTextY = 550, 320
	scoreTextX, scoreTextY   = 550, 290
)

// Layers, back to front.
const (
	layerRoad     = 0
	layerObstacle = 1
	layerPlayer   = 2
	layerHUD      = 10
)

// SetupRace builds the scene the race controller expects and starts the music.
func SetupRace(e *Engine, cfg config.RaceConfig) {
	for i := 0; i < cfg.Road.Lines; i++ {
		rl := e.AddSprite(race.RoadlineLabel(i), race.KindRoadline)
		rl.X = cfg.Road.StartX + cfg.Road.Spacing*float64(i)
		rl.Y = cfg.Road.Y
		rl.Scale = cfg.Road.Scale
		rl.Layer = layerRoad
	}

	obs := e.AddSprite(race.ObstacleLabel, race.KindObstacle)
	obs.X, obs.Y = cfg.Obstacle.StartX, cfg.Obstacle.Y
	obs.Layer = layerObstacle
	obs.Collision = true

	player := e.AddSprite(race.PlayerLabel, race.KindPlayer)
	player.X, player.Y = cfg.Player.X, cfg.Physics.GroundY
	player.Layer = layerPlayer
	player.Collision = true

	health := e.AddText(race.HealthTextLabel, fmt.Sprintf("Health: %d", cfg.Player.Health))
	health.X, health.Y = healthTextX, healthTextY

	score := e.AddText(race.ScoreTextLabel, "Score: 0")
	score.X, score.Y = scoreTextX, scoreTextY

	e.PlayMusic(race.MusicWhimsical, cfg.Audio.MusicVolume)
	e.logger.Debug("scene ready", "sprites", len(e.sprites), "texts", len(e.texts))
}
