package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpriteData is the component value linking an entity to its sprite.
type SpriteData struct {
	*sprig.Sprite
}

// SpriteComponent holds the sprite of an entity.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// SpriteDestroyed is published when UpdateSprites removes an entity whose
// sprite was destroyed. Consume it with Subscribe and ProcessEvents.
var SpriteDestroyed = events.NewEventType[DestroyedEvent]()

// DestroyedEvent carries the removed entity and its sprite.
type DestroyedEvent struct {
	Entity donburi.Entity
	Sprite *sprig.Sprite
}

// NewSpriteEntity creates an entity carrying s plus any extra components.
func NewSpriteEntity(world donburi.World, s *sprig.Sprite, extra ...donburi.IComponentType) donburi.Entity {
	if s == nil {
		panic("ecs: cannot attach nil sprite")
	}
	components := append([]donburi.IComponentType{SpriteComponent}, extra...)
	entity := world.Create(components...)
	SpriteComponent.SetValue(world.Entry(entity), SpriteData{Sprite: s})
	return entity
}

// GetSprite returns the sprite of entry, or nil if it has none.
func GetSprite(entry *donburi.Entry) *sprig.Sprite {
	if !entry.HasComponent(SpriteComponent) {
		return nil
	}
	return SpriteComponent.Get(entry).Sprite
}

// UpdateSprites updates every live sprite by dt, then removes the entities
// whose sprite is destroyed and publishes SpriteDestroyed for each.
func UpdateSprites(world donburi.World, dt float64) {
	var destroyed []*donburi.Entry
	SpriteComponent.Each(world, func(e *donburi.Entry) {
		s := SpriteComponent.Get(e).Sprite
		if s == nil {
			return
		}
		if !s.Destroyed() {
			s.Update(dt)
		}
		if s.Destroyed() {
			destroyed = append(destroyed, e)
		}
	})
	for _, e := range destroyed {
		SpriteDestroyed.Publish(world, DestroyedEvent{
			Entity: e.Entity(),
			Sprite: SpriteComponent.Get(e).Sprite,
		})
		world.Remove(e.Entity())
	}
}

// DrawSprites draws every live sprite onto surface. Draw order follows
// Donburi's iteration order.
func DrawSprites(world donburi.World, surface sprig.Surface) {
	SpriteComponent.Each(world, func(e *donburi.Entry) {
		s := SpriteComponent.Get(e).Sprite
		if s != nil && !s.Destroyed() {
			s.Draw(surface)
		}
	})
}
