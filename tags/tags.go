package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Rat    = donburi.NewTag().SetName("Rat")
	Tree   = donburi.NewTag().SetName("Tree")
	Rock   = donburi.NewTag().SetName("Rock")
)
