// Package ebitenroi connects roi to [Ebitengine]: it turns mouse and touch
// input into drag samples, maps between screen and scene through a
// pan/zoom/rotate [View], and draws ROI outlines and handles.
//
// Usage inside an ebiten.Game:
//
//	func (g *Game) Update() error {
//		g.view.Update(1.0 / float32(ebiten.TPS()))
//		g.input.Update()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		ebitenroi.DrawRegistry(screen, g.reg, g.view, g.input, ebitenroi.DefaultStyle())
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenroi
