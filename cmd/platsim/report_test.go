package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/bubblebound/shared/leveldata"
	"github.com/automoto/bubblebound/shared/tilemap"
)

func TestReachabilityReport(t *testing.T) {
	open := tilemap.MustParse(`
##########
#........#
#........#
#........#
##########
`, 40)
	sealed := tilemap.MustParse(`
##########
#...#....#
#...#....#
#...#....#
##########
`, 40)

	c := &leveldata.Campaign{Levels: []leveldata.Level{
		{Name: "open", Map: open, PlayerSpawn: leveldata.Point{X: 50, Y: 120}, EnemySpawns: []leveldata.Point{{X: 330, Y: 120}}},
		{Name: "sealed", Map: sealed, PlayerSpawn: leveldata.Point{X: 50, Y: 120}, EnemySpawns: []leveldata.Point{{X: 330, Y: 120}}},
	}}

	lines := reachabilityReport(c)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level spawns 1/1 reachable")
	assert.Contains(t, lines[1], "level spawns 0/1 reachable")
}
