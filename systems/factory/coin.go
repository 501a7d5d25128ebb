package factory

import (
	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	addObject(ecs, coin, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCoin))
	components.Sprite.SetValue(coin, components.SpriteData{Path: cfg.Level.CoinImage})
	return coin
}
