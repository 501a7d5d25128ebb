package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Wall           = donburi.NewTag().SetName("Wall")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Coin           = donburi.NewTag().SetName("Coin")
	Hazard         = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvCoin     = "coin"
	ResolvHazard   = "hazard"
)
