package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Match  = donburi.NewTag().SetName("Match")
)
