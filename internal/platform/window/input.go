package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bounce-shield/internal/core"
)

// heldKeys map continuous movement.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// pressedKeys map one-shot actions.
var pressedKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:      {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart:    {ebiten.KeyR},
	core.ActionFullscreen: {ebiten.KeyF},
	core.ActionBack:       {ebiten.KeyB},
	core.ActionQuit:       {ebiten.KeyQ},
}

func justPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// pollInput builds a frame from key state. Unlike terminals, windows
// report real key state, so movement needs no hold emulation.
func pollInput(isDown, isJustPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if isDown(k) {
				frame.Hold(action)
				break
			}
		}
	}
	for action, keys := range pressedKeys {
		for _, k := range keys {
			if isJustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
