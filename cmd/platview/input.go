package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/bubblebound/components"
)

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var (
	bindLeft  = binding{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}}
	bindRight = binding{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}}
	bindJump  = binding{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}}
	bindShoot = binding{keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyJ}, buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}}
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// readKeyboard polls keyboard and gamepads into the player's controls.
func readKeyboard() components.PlayerInputData {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	return components.PlayerInputData{
		Left:  bindLeft.pressed(),
		Right: bindRight.pressed(),
		Jump:  bindJump.pressed(),
		Shoot: bindShoot.pressed(),
	}
}

func (b binding) pressed() bool {
	for _, key := range b.keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
