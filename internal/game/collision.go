package game

import "github.com/tomz197/fatcat/internal/object"

// PickupCollision reports whether the player touches an active pickup.
func PickupCollision(player object.Entity, pickup object.Pickup) bool {
	return pickup.Active && player.Overlaps(pickup.Entity)
}

// PursuerCollision reports whether the pursuer has caught the player.
func PursuerCollision(player, pursuer object.Entity) bool {
	return player.Overlaps(pursuer)
}

// collectPickup scores the active pickup if the player touches it and
// immediately spawns its replacement.
func (s *Session) collectPickup() bool {
	if !PickupCollision(s.player.Entity, s.pickup) {
		return false
	}
	s.score += s.cfg.PickupReward
	s.deactivatePickup()
	s.c.Audio.PlayOnce(CueEat)
	s.c.Display.SetScore(s.score)
	s.spawnPickup()

	s.logger.Debug("pickup collected", "score", s.score)
	return true
}

func (s *Session) caught() bool {
	return PursuerCollision(s.player.Entity, s.pursuer.Entity)
}
