package main

import (
	"github.com/automoto/platfight/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding maps a keyboard and a standard gamepad onto one player's raw
// controller state.
type binding struct {
	left, right, up, down     ebiten.Key
	cLeft, cRight, cUp, cDown ebiten.Key
	jump, attack, guard       []ebiten.Key
	gamepad                   int // Index into the connected gamepads, -1 for none
}

var bindings = []binding{
	{
		left: ebiten.KeyA, right: ebiten.KeyD, up: ebiten.KeyW, down: ebiten.KeyS,
		cLeft: ebiten.KeyF, cRight: ebiten.KeyH, cUp: ebiten.KeyT, cDown: ebiten.KeyG,
		jump:    []ebiten.Key{ebiten.KeySpace},
		attack:  []ebiten.Key{ebiten.KeyJ},
		guard:   []ebiten.Key{ebiten.KeyK},
		gamepad: 0,
	},
	{
		left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight, up: ebiten.KeyArrowUp, down: ebiten.KeyArrowDown,
		cLeft: ebiten.KeyNumpad4, cRight: ebiten.KeyNumpad6, cUp: ebiten.KeyNumpad8, cDown: ebiten.KeyNumpad5,
		jump:    []ebiten.Key{ebiten.KeyShiftRight},
		attack:  []ebiten.Key{ebiten.KeyPeriod},
		guard:   []ebiten.Key{ebiten.KeySlash},
		gamepad: 1,
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

func pollRaw(b binding) controls.RawState {
	var raw controls.RawState
	raw.LX = keyAxis(b.left, b.right)
	raw.LY = keyAxis(b.up, b.down)
	raw.RX = keyAxis(b.cLeft, b.cRight)
	raw.RY = keyAxis(b.cUp, b.cDown)
	raw.Jump = anyPressed(b.jump)
	raw.Attack = anyPressed(b.attack)
	raw.Guard = anyPressed(b.guard)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if b.gamepad < 0 || b.gamepad >= len(gamepadIDs) {
		return raw
	}
	id := gamepadIDs[b.gamepad]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return raw
	}
	// The stick wins over the keyboard when it is pushed further.
	raw.LX = larger(raw.LX, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
	raw.LY = larger(raw.LY, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
	raw.RX = larger(raw.RX, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal))
	raw.RY = larger(raw.RY, ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical))
	raw.Jump = raw.Jump ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
	raw.Attack = raw.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	raw.Guard = raw.Guard ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) ||
		ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	return raw
}

func keyAxis(neg, pos ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func larger(a, b float64) float64 {
	if b*b > a*a {
		return b
	}
	return a
}
