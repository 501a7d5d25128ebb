package components

import "github.com/yohamta/donburi"

// SpriteData is a static texture stretched over the entity's object.
type SpriteData struct {
	Path string
}

var Sprite = donburi.NewComponentType[SpriteData]()
