package entity

import (
	"fmt"
	"log"

	combat "github.com/milk9111/glitchknight/component"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

// Scene is a populated arena.
type Scene struct {
	Arena    ecs.Entity
	Layout   *obj.Arena
	Player   ecs.Entity
	Switcher *obj.ModeSwitcher
	Enemies  []*obj.Enemy
}

// BuildScene loads an arena spec and the player and enemy specs it names,
// then creates the arena, the player at its spawn and one enemy per enemy
// spawn.
func BuildScene(w *ecs.World, arenaFile string, clock *combat.SimClock) (*Scene, error) {
	arenaSpec, err := prefabs.LoadSpec[prefabs.ArenaSpec](arenaFile)
	if err != nil {
		return nil, err
	}
	playerFile := arenaSpec.Player
	if playerFile == "" {
		playerFile = prefabs.PlayerFile
	}
	enemyFile := arenaSpec.Enemy
	if enemyFile == "" {
		enemyFile = prefabs.EnemyFile
	}
	playerSpec, err := prefabs.LoadSpec[prefabs.PlayerSpec](playerFile)
	if err != nil {
		return nil, err
	}
	enemySpec, err := prefabs.LoadSpec[prefabs.EnemySpec](enemyFile)
	if err != nil {
		return nil, err
	}

	s := &Scene{}
	s.Arena, s.Layout, err = NewArena(w, arenaSpec)
	if err != nil {
		return nil, err
	}
	s.Player, s.Switcher, err = NewPlayerAt(w, playerSpec, clock, s.Layout.PlayerSpawn)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", arenaSpec.Name, err)
	}
	for _, pos := range s.Layout.EnemySpawns {
		_, enemy, err := NewEnemyAt(w, enemySpec, clock, pos)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", arenaSpec.Name, err)
		}
		enemy.Target = s.Switcher
		s.Enemies = append(s.Enemies, enemy)
	}
	log.Printf("scene: %s %dx%d with %d enemies", arenaSpec.Name, s.Layout.Width, s.Layout.Height, len(s.Enemies))
	return s, nil
}

// NearestEnemy returns the closest living enemy to the player.
func (s *Scene) NearestEnemy() *obj.Enemy {
	if s == nil || s.Switcher == nil {
		return nil
	}
	var best *obj.Enemy
	bestDist := 0.0
	px := s.Switcher.Position().X
	for _, e := range s.Enemies {
		if !e.IsAlive() {
			continue
		}
		d := e.Position().X - px
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
