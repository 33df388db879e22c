package interactions

import (
	"fmt"

	"github.com/ponder-labs/interactor/pkg/discord"
)

const (
	// MaxButtonsPerRow is the number of buttons that fit in one action row.
	MaxButtonsPerRow = 5
	// MaxRows is the number of action rows allowed in a message or modal.
	MaxRows = 5
)

// Encode translates a handler's [Response] to the given interaction type
// into Discord's reply schema. It rejects responses that Discord would
// reject, rather than truncating them or sending them anyway.
func Encode(t discord.InteractionType, resp Response) (*discord.Response, error) {
	switch r := resp.(type) {
	case Message:
		return encodeMessage(r)
	case *Message:
		if r != nil {
			return encodeMessage(*r)
		}
	case Modal:
		return encodeModal(t, r)
	case *Modal:
		if r != nil {
			return encodeModal(t, *r)
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownResponse, resp)
}

func encodeMessage(m Message) (*discord.Response, error) {
	rows, err := buttonRows(m.Buttons)
	if err != nil {
		return nil, err
	}

	resp := &discord.Response{
		Type: discord.CallbackChannelMessageWithSource,
		Data: &discord.ResponseData{
			Content:    &m.Text,
			Components: rows,
		},
	}

	if m.Edit {
		resp.Type = discord.CallbackUpdateMessage
	}
	if m.Ephemeral {
		flags := discord.MessageFlagEphemeral
		resp.Data.Flags = &flags
	}

	return resp, nil
}

// buttonRows partitions buttons into consecutive action rows,
// preserving their order. The result is never nil.
func buttonRows(buttons []Button) ([]discord.Component, error) {
	n := (len(buttons) + MaxButtonsPerRow - 1) / MaxButtonsPerRow
	if n > MaxRows {
		return nil, fmt.Errorf("%w: %d buttons need %d rows, max %d", ErrTooManyComponents, len(buttons), n, MaxRows)
	}

	rows := make([]discord.Component, 0, n)
	for i := 0; i < len(buttons); i += MaxButtonsPerRow {
		chunk := buttons[i:min(i+MaxButtonsPerRow, len(buttons))]
		row := discord.Component{
			Type:       discord.ComponentActionRow,
			Components: make([]discord.Component, 0, len(chunk)),
		}
		for _, b := range chunk {
			row.Components = append(row.Components, discord.Component{
				Type:     discord.ComponentButton,
				Label:    b.Text,
				Style:    discord.ButtonStylePrimary,
				CustomID: b.ID,
			})
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func encodeModal(t discord.InteractionType, m Modal) (*discord.Response, error) {
	if t == discord.InteractionModalSubmit {
		return nil, ErrInvalidResponseTransition
	}
	if len(m.Fields) > MaxRows {
		return nil, fmt.Errorf("%w: %d modal fields, max %d", ErrTooManyComponents, len(m.Fields), MaxRows)
	}

	rows := make([]discord.Component, 0, len(m.Fields))
	for _, f := range m.Fields {
		rows = append(rows, discord.Component{
			Type: discord.ComponentActionRow,
			Components: []discord.Component{
				{
					Type:     discord.ComponentTextInput,
					Label:    f.Label,
					Style:    discord.TextInputStyleShort,
					CustomID: f.ID,
				},
			},
		})
	}

	return &discord.Response{
		Type: discord.CallbackModal,
		Data: &discord.ResponseData{
			Components: rows,
			CustomID:   m.ID,
			Title:      m.Title,
		},
	}, nil
}
