package systems

import (
	"image/color"

	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage puts text at full opacity. It fades out once ShowMessage
// stops being called.
func ShowMessage(ecs *ecs.ECS, text string) {
	showMessage(getOrCreateMessageState(ecs), text)
}

func showMessage(state *components.MessageData, text string) {
	state.Text = text
	state.X = cfg.Message.X
	state.Y = cfg.Message.Y
	state.Alpha = 1
	if state.Tween == nil {
		state.Tween = gween.New(1, 0, cfg.Message.FadeDuration, ease.Linear)
	} else {
		state.Tween.Reset()
	}
}

// UpdateMessage advances the fade of the active message.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.Tween == nil {
		return
	}

	alpha, finished := state.Tween.Update(float32(frameTime()))
	state.Alpha = alpha
	if finished {
		state.Alpha = 0
		state.Tween = nil
	}
}

// DrawMessage renders the active message while it is visible
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" || state.Alpha <= 0 {
		return
	}

	c := cfg.UI.TextColor
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * state.Alpha)}
	drawText(screen, state.Text, fonts.Regular.Get(), state.X, state.Y, clr)
}

// getOrCreateMessageState returns the singleton Message component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageData {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Message))
	}
	return components.Message.Get(entry)
}
