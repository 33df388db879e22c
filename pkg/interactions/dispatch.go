package interactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ponder-labs/interactor/pkg/discord"
)

// Dispatcher routes interactions to a [Handler]. It holds no mutable
// state, so a single instance can serve concurrent requests.
type Dispatcher struct {
	handler Handler
}

func NewDispatcher(h Handler) *Dispatcher {
	if h == nil {
		h = UnimplementedHandler{}
	}
	return &Dispatcher{handler: h}
}

// Dispatch handles a single authenticated interaction, and returns exactly one reply,
// or an error: a [*DecodeError], [ErrUnhandled], [ErrInvalidResponseTransition],
// [ErrTooManyComponents], [ErrUnknownResponse], or any other handler error.
// Pings are answered directly, without involving the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, in *discord.Interaction) (*discord.Response, error) {
	if in.Type == discord.InteractionPing {
		return &discord.Response{Type: discord.CallbackPong}, nil
	}

	req, err := Decode(in)
	if err != nil {
		return nil, err
	}

	l := zerolog.Ctx(ctx)
	var resp Response
	switch r := req.(type) {
	case ApplicationCommand:
		l.Debug().Str("command_name", r.CommandName).Msg("dispatching application command")
		resp, err = d.handler.HandleApplicationCommand(ctx, r)
	case MessageComponent:
		l.Debug().Str("custom_id", r.ID).Msg("dispatching message component")
		resp, err = d.handler.HandleMessageComponent(ctx, r)
	case ModalSubmit:
		l.Debug().Str("custom_id", r.ID).Msg("dispatching modal submission")
		resp, err = d.handler.HandleModalSubmit(ctx, r)
	}

	if err != nil {
		if errors.Is(err, ErrUnhandled) {
			return nil, err
		}
		return nil, fmt.Errorf("%s handler: %w", in.Type, err)
	}

	return Encode(in.Type, resp)
}
