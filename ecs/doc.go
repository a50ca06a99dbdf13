// Package ecs provides a Donburi adapter for sprig sprites.
//
// Attach a sprite to an entity with NewSpriteEntity, then call
// UpdateSprites and DrawSprites from your systems. UpdateSprites removes
// entities whose sprite has been destroyed and publishes a SpriteDestroyed
// event for each.
package ecs
