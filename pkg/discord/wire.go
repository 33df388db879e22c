package discord

// These are partial structs, covering only the fields that this module reads or writes.
// See https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object.

// InteractionType is the "type" field of an inbound [Interaction].
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionModalSubmit        InteractionType = 5
)

// String returns a snake-case name, suitable for log fields and metric labels.
func (t InteractionType) String() string {
	switch t {
	case InteractionPing:
		return "ping"
	case InteractionApplicationCommand:
		return "application_command"
	case InteractionMessageComponent:
		return "message_component"
	case InteractionModalSubmit:
		return "modal_submit"
	default:
		return "unknown"
	}
}

// Interaction is the JSON body of an inbound interaction webhook. Which of
// the optional fields is populated depends on the type, but nothing here
// enforces that: callers must check for presence before dereferencing.
type Interaction struct {
	ID            string           `json:"id,omitempty"`
	ApplicationID string           `json:"application_id,omitempty"`
	Type          InteractionType  `json:"type"`
	Token         string           `json:"token,omitempty"`
	Data          *InteractionData `json:"data,omitempty"`
	Member        *GuildMember     `json:"member,omitempty"`
	Message       *Message         `json:"message,omitempty"`
}

type InteractionData struct {
	Name       *string     `json:"name,omitempty"`
	CustomID   *string     `json:"custom_id,omitempty"`
	Components []Component `json:"components,omitempty"`
}

type GuildMember struct {
	User *User `json:"user,omitempty"`
}

type User struct {
	ID string `json:"id"`
}

// Message is the message to which the triggering component is attached.
type Message struct {
	Content string `json:"content"`
}

// ComponentType is the "type" field of a [Component].
// See https://discord.com/developers/docs/components/reference#component-object-component-types.
type ComponentType int

const (
	ComponentActionRow ComponentType = 1
	ComponentButton    ComponentType = 2
	ComponentTextInput ComponentType = 4
)

const (
	ButtonStylePrimary  = 1
	TextInputStyleShort = 1
)

// Component is a node in a component tree: an action row containing leaf
// components (buttons and text inputs) in both requests and responses.
type Component struct {
	Type       ComponentType `json:"type"`
	Label      string        `json:"label,omitempty"`
	Style      int           `json:"style,omitempty"`
	CustomID   string        `json:"custom_id,omitempty"`
	Value      *string       `json:"value,omitempty"`
	Components []Component   `json:"components,omitempty"`
}

// CallbackType is the "type" field of a [Response].
type CallbackType int

const (
	CallbackPong                     CallbackType = 1
	CallbackChannelMessageWithSource CallbackType = 4
	CallbackUpdateMessage            CallbackType = 7
	CallbackModal                    CallbackType = 9
)

// MessageFlagEphemeral makes a message visible only to the triggering user.
const MessageFlagEphemeral = 1 << 6

// Response is the JSON body of the synchronous reply to an [Interaction].
type Response struct {
	Type CallbackType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// ResponseData is the "data" field of a [Response]. Components are always
// serialized, even when empty, because an empty list in a message update
// removes the existing components of the message.
type ResponseData struct {
	Content    *string     `json:"content,omitempty"`
	Flags      *int        `json:"flags,omitempty"`
	Components []Component `json:"components"`
	CustomID   string      `json:"custom_id,omitempty"`
	Title      string      `json:"title,omitempty"`
}
