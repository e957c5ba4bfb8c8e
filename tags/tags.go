package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Flower = donburi.NewTag().SetName("Flower")
)

// Resolv tags for overlap queries
const (
	ResolvPlayer = "Player"
	ResolvFlower = "flower"
)
