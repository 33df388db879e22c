// Package interactions translates Discord interaction payloads into
// application-friendly requests, dispatches them to a [Handler], and
// translates the handler's [Response] back into Discord's reply schema.
package interactions

import "slices"

// Request is a decoded interaction: an [ApplicationCommand],
// a [MessageComponent], or a [ModalSubmit].
type Request interface {
	isRequest()
}

// ApplicationCommand is a slash-command invocation.
type ApplicationCommand struct {
	CommandName string
	UserID      string
}

// MessageComponent is the activation of a button attached to a message.
type MessageComponent struct {
	ID         string
	SourceText string // Empty if the interaction has no source message.
}

// ModalSubmit is the submission of a modal form.
type ModalSubmit struct {
	ID         string
	Values     map[string]string // Field ID to submitted text.
	SourceText string
}

func (ApplicationCommand) isRequest() {}
func (MessageComponent) isRequest() {}
func (ModalSubmit) isRequest() {}

// Response is the result of handling an interaction:
// either a [Message] or a [Modal].
type Response interface {
	isResponse()
}

// Message is a reply message. Its builder-style methods return
// modified copies, so a Message value can be shared and reused safely.
type Message struct {
	Text      string
	Buttons   []Button
	Ephemeral bool // Visible only to the triggering user.
	Edit      bool // Update the source message instead of posting a new one.
}

type Button struct {
	ID   string
	Text string
}

func NewMessage(text string) Message {
	return Message{Text: text}
}

// WithButton returns a copy of the message with an additional button.
func (m Message) WithButton(id, text string) Message {
	m.Buttons = append(slices.Clip(m.Buttons), Button{ID: id, Text: text})
	return m
}

func (m Message) AsEphemeral() Message {
	m.Ephemeral = true
	return m
}

func (m Message) AsEdit() Message {
	m.Edit = true
	return m
}

func (Message) isResponse() {}

// Modal is a pop-up form with short text fields.
type Modal struct {
	ID     string
	Title  string
	Fields []TextField
}

type TextField struct {
	ID    string
	Label string
}

func NewModal(id, title string) Modal {
	return Modal{ID: id, Title: title}
}

// WithField returns a copy of the modal with an additional text field.
func (m Modal) WithField(id, label string) Modal {
	m.Fields = append(slices.Clip(m.Fields), TextField{ID: id, Label: label})
	return m
}

func (Modal) isResponse() {}

