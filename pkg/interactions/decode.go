package interactions

import (
	"fmt"

	"github.com/ponder-labs/interactor/pkg/discord"
)

// Decode translates a non-ping interaction into an [ApplicationCommand],
// [MessageComponent], or [ModalSubmit]. It returns a [*DecodeError] if a
// field that the interaction's type requires is absent or malformed.
func Decode(in *discord.Interaction) (Request, error) {
	switch in.Type {
	case discord.InteractionApplicationCommand:
		return decodeApplicationCommand(in)
	case discord.InteractionMessageComponent:
		return decodeMessageComponent(in)
	case discord.InteractionModalSubmit:
		return decodeModalSubmit(in)
	default:
		return nil, &DecodeError{Type: in.Type, Err: ErrUnknownType}
	}
}

func decodeApplicationCommand(in *discord.Interaction) (ApplicationCommand, error) {
	if in.Data == nil || in.Data.Name == nil {
		return ApplicationCommand{}, missing(in, "data.name")
	}
	if in.Member == nil || in.Member.User == nil || in.Member.User.ID == "" {
		return ApplicationCommand{}, missing(in, "member.user.id")
	}

	return ApplicationCommand{
		CommandName: *in.Data.Name,
		UserID:      in.Member.User.ID,
	}, nil
}

func decodeMessageComponent(in *discord.Interaction) (MessageComponent, error) {
	id, err := customID(in)
	if err != nil {
		return MessageComponent{}, err
	}

	return MessageComponent{
		ID:         id,
		SourceText: sourceText(in),
	}, nil
}

// decodeModalSubmit reads the submitted values from the modal's component
// tree: every row is expected to contain a single text input.
func decodeModalSubmit(in *discord.Interaction) (ModalSubmit, error) {
	id, err := customID(in)
	if err != nil {
		return ModalSubmit{}, err
	}

	values := make(map[string]string, len(in.Data.Components))
	for i, row := range in.Data.Components {
		field := fmt.Sprintf("data.components[%d]", i)
		if len(row.Components) == 0 {
			return ModalSubmit{}, malformed(in, field, "row without components")
		}

		input := row.Components[0]
		if input.CustomID == "" {
			return ModalSubmit{}, malformed(in, field, "input without custom_id")
		}
		if input.Value == nil {
			return ModalSubmit{}, malformed(in, field, "input without value")
		}
		if _, ok := values[input.CustomID]; ok {
			return ModalSubmit{}, malformed(in, field, "duplicate custom_id "+input.CustomID)
		}

		values[input.CustomID] = *input.Value
	}

	return ModalSubmit{
		ID:         id,
		Values:     values,
		SourceText: sourceText(in),
	}, nil
}

func customID(in *discord.Interaction) (string, error) {
	if in.Data == nil || in.Data.CustomID == nil {
		return "", missing(in, "data.custom_id")
	}
	return *in.Data.CustomID, nil
}

// sourceText returns the content of the message to which the triggering
// component is attached. Not every interaction has one (e.g. a modal
// opened by a slash command), so this may be empty.
func sourceText(in *discord.Interaction) string {
	if in.Message == nil {
		return ""
	}
	return in.Message.Content
}

func missing(in *discord.Interaction, field string) error {
	return &DecodeError{Type: in.Type, Field: field, Err: ErrMissingField}
}

func malformed(in *discord.Interaction, field, reason string) error {
	return &DecodeError{Type: in.Type, Field: field, Err: fmt.Errorf("%w: %s", ErrMalformedComponents, reason)}
}
