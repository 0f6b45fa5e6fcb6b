// Package fieldboard is a canvas interaction engine for team boards,
// built on [Ebitengine].
//
// Coaches place roster cards on a large pannable, zoomable canvas, group
// them into lanes, and annotate with sticky notes and text boxes. The
// engine turns raw pointer and touch input into coherent mutations of
// position, size, and selection — single-pointer drag, resize, and box
// select; two-finger pan/zoom; drag-and-drop ingestion from an external
// roster list — while the caller stays in charge of the data.
//
// # Controlled component
//
// A Board never owns authoritative state. The caller supplies accessors
// for the current card and object slices and receives a full replacement
// slice through a change callback on every committed mutation (once per
// gesture release, never per pointer move):
//
//	var cards []fieldboard.Card
//	var objects []fieldboard.BoardObject
//
//	board := fieldboard.New(fieldboard.Config{
//		Editable: true,
//		Cards:    func() []fieldboard.Card { return cards },
//		Objects:  func() []fieldboard.BoardObject { return objects },
//		OnCardsChange:   func(next []fieldboard.Card) { cards = next },
//		OnObjectsChange: func(next []fieldboard.BoardObject) { objects = next },
//	})
//
// Implement [ebiten.Game] and call [Board.Update] each tick; draw with a
// [Renderer] consuming [Board.BuildFrame]:
//
//	func (g *Game) Update() error { g.board.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.Draw(screen, g.board.BuildFrame(), g.board.Camera())
//	}
//
// # Drag and drop
//
// The roster list encodes entries with [EncodeDragPayload]; the board
// decodes drops through a prioritized fallback chain of channels, so a
// payload that survives only the generic text channel still places a
// card. Foreign drops are a silent no-op.
//
// # Persistence
//
// Saving is the caller's concern. [Autosaver] debounces commit bursts
// into single save calls; wire its Changed method into the change
// callbacks.
//
// [Ebitengine]: https://ebitengine.org
package fieldboard
