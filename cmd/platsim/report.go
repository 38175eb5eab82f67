package main

import (
	"fmt"

	"github.com/automoto/bubblebound/navigation"
	"github.com/automoto/bubblebound/shared/leveldata"
)

// reachabilityReport checks every level's enemy spawns against the player
// spawn with a full A* search. Spawn-less levels are checked against their
// spawn candidates.
func reachabilityReport(c *leveldata.Campaign) []string {
	var lines []string
	for i, lvl := range c.Levels {
		grid := navigation.NewGrid(lvl.Map)
		spawns := lvl.EnemySpawns
		source := "level"
		if len(spawns) == 0 {
			spawns = leveldata.SpawnCandidates(lvl.Map)
			source = "candidates"
		}

		reachable, longest := 0, 0
		for _, p := range spawns {
			route := grid.FindPath(p.X, p.Y, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
			if route == nil {
				continue
			}
			reachable++
			longest = max(longest, len(route))
		}
		lines = append(lines, fmt.Sprintf("%2d %-16s %dx%d  %s spawns %d/%d reachable  longest route %d cells",
			i+1, lvl.Name, lvl.Map.Cols(), lvl.Map.Rows(), source, reachable, len(spawns), longest))
	}
	return lines
}
