// Package sprig is a minimal 2D sprite engine for [Ebitengine].
//
// A [Sprite] carries a position, size, rotation (in degrees), flip flags and
// opacity, and optionally a [Texture], an [Animation], a [Physics] integrator
// and a list of [Action] values that mutate it over time.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and a
// fixed-step game loop around a [Group] of sprites:
//
//	game := sprig.NewGame(sprig.RunConfig{Title: "Rocks", Width: 800, Height: 600})
//
//	tex, err := sprig.LoadTexture(sprig.FSLoader{}, "assets/rock.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	rock := sprig.NewSprite(100, 100)
//	rock.SetTexture(tex)
//	rock.SetPhysics(&sprig.Physics{Velocity: sprig.Vec2{X: 40, Y: 10}})
//	rock.AddAction(sprig.Forever(sprig.RotateBy(360, 4, nil)))
//	game.Sprites.Add(rock)
//
//	game.OnUpdate = func(g *sprig.Game, dt float64) error {
//		g.Sprites.Wrap(800, 600)
//		return nil
//	}
//	if err := sprig.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, call [Sprite.Update] and [Sprite.Draw] from your own
// [ebiten.Game], drawing through an [ImageSurface] or any other [Surface].
//
// # Frame order
//
// [Sprite.Update] integrates physics first, then advances the animation and
// shows its current frame, then applies every action attached when the call
// began, in the order they were added. Actions that report completion are
// removed; actions added during the frame first run on the next one.
//
// # Ownership
//
// A sprite's bounds and its attached physics refer back to the sprite's own
// Position, so always use sprites through the pointer [NewSprite] returns.
// Sprites never remove themselves from a collection: [Sprite.Destroy] only
// raises a flag that the collection owner, such as [Group], acts on.
//
// An ECS adapter for [Donburi] lives in sprig/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sprig
