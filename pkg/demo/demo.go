// Package demo is a small Discord application built on [interactions.Handler]:
// a "/hello" command that replies with buttons, a click counter that edits its
// own message, an ephemeral message, and a modal form round-trip.
package demo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ponder-labs/interactor/pkg/interactions"
)

const (
	buttonClick = "the_button"
	buttonModal = "modal"
	buttonSpawn = "spawn"

	modalID = "my_modal"
	field1  = "v1"
	field2  = "v2"
)

var clicksPattern = regexp.MustCompile(`You've clicked the button (\d+) times\.`)

type Handler struct {
	interactions.UnimplementedHandler
}

func (Handler) HandleApplicationCommand(ctx context.Context, ac interactions.ApplicationCommand) (interactions.Response, error) {
	if ac.CommandName != "hello" {
		zerolog.Ctx(ctx).Warn().Str("command_name", ac.CommandName).Msg("unknown command")
		return nil, interactions.ErrUnhandled
	}

	return withButtons(interactions.NewMessage(fmt.Sprintf("Hello <@%s>!", ac.UserID))), nil
}

func (Handler) HandleMessageComponent(ctx context.Context, mc interactions.MessageComponent) (interactions.Response, error) {
	switch mc.ID {
	case buttonClick:
		n := clicks(mc.SourceText) + 1
		return withButtons(interactions.NewMessage(fmt.Sprintf("You've clicked the button %d times.", n))).AsEdit(), nil

	case buttonSpawn:
		msg := "This is a new message. The message is also *ephemeral*, meaning it's only visible to you."
		return interactions.NewMessage(msg).AsEphemeral(), nil

	case buttonModal:
		return interactions.NewModal(modalID, "Provide input values.").
			WithField(field1, "A value").
			WithField(field2, "Another value"), nil

	default:
		zerolog.Ctx(ctx).Warn().Str("custom_id", mc.ID).Msg("unknown button")
		return nil, interactions.ErrUnhandled
	}
}

func (Handler) HandleModalSubmit(ctx context.Context, ms interactions.ModalSubmit) (interactions.Response, error) {
	if ms.ID != modalID {
		zerolog.Ctx(ctx).Warn().Str("custom_id", ms.ID).Msg("unknown modal")
		return nil, interactions.ErrUnhandled
	}

	text := fmt.Sprintf("%s\nYou entered the values `%s` and `%s`.", ms.SourceText, ms.Values[field1], ms.Values[field2])
	return withButtons(interactions.NewMessage(text)).AsEdit(), nil
}

func withButtons(m interactions.Message) interactions.Message {
	return m.WithButton(buttonClick, "the button").
		WithButton(buttonModal, "input some text").
		WithButton(buttonSpawn, "spawn new message")
}

// clicks parses the click counter from the text of a previous
// reply, or returns 0 if the text doesn't contain one.
func clicks(text string) uint64 {
	m := clicksPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
