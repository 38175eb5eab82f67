package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Bubble = donburi.NewTag().SetName("Bubble")
)

// Resolv tags for entity overlap queries
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvBubble = "Bubble"
)
