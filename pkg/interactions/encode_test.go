package interactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/ponder-labs/interactor/pkg/discord"
)

func buttons(n int) Message {
	m := NewMessage("hi")
	for i := range n {
		m = m.WithButton(fmt.Sprintf("b%d", i+1), fmt.Sprintf("button %d", i+1))
	}
	return m
}

func TestEncodeMessageRows(t *testing.T) {
	resp, err := Encode(discord.InteractionApplicationCommand, buttons(7))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if resp.Type != discord.CallbackChannelMessageWithSource {
		t.Errorf("Encode() type = %d, want %d", resp.Type, discord.CallbackChannelMessageWithSource)
	}
	if got := *resp.Data.Content; got != "hi" {
		t.Errorf("Encode() content = %q, want %q", got, "hi")
	}

	rows := resp.Data.Components
	if len(rows) != 2 {
		t.Fatalf("Encode() rows = %d, want 2", len(rows))
	}
	if n := len(rows[0].Components); n != 5 {
		t.Errorf("Encode() first row = %d buttons, want 5", n)
	}
	if n := len(rows[1].Components); n != 2 {
		t.Errorf("Encode() second row = %d buttons, want 2", n)
	}

	i := 1
	for _, row := range rows {
		if row.Type != discord.ComponentActionRow {
			t.Errorf("Encode() row type = %d, want %d", row.Type, discord.ComponentActionRow)
		}
		for _, b := range row.Components {
			want := discord.Component{
				Type:     discord.ComponentButton,
				Label:    fmt.Sprintf("button %d", i),
				Style:    discord.ButtonStylePrimary,
				CustomID: fmt.Sprintf("b%d", i),
			}
			if !reflect.DeepEqual(b, want) {
				t.Errorf("Encode() button %d = %+v, want %+v", i, b, want)
			}
			i++
		}
	}
}

func TestEncodeMessageJSON(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "plain",
			msg:  NewMessage("hi"),
			want: `{"type":4,"data":{"content":"hi","components":[]}}`,
		},
		{
			name: "ephemeral",
			msg:  NewMessage("hi").AsEphemeral(),
			want: `{"type":4,"data":{"content":"hi","flags":64,"components":[]}}`,
		},
		{
			name: "edit",
			msg:  NewMessage("hi").AsEdit(),
			want: `{"type":7,"data":{"content":"hi","components":[]}}`,
		},
		{
			name: "edit_with_button",
			msg:  NewMessage("").WithButton("id", "label").AsEdit().AsEphemeral(),
			want: `{"type":7,"data":{"content":"","flags":64,"components":[{"type":1,"components":[{"type":2,"label":"label","style":1,"custom_id":"id"}]}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Encode(discord.InteractionMessageComponent, tt.msg)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := json.Marshal(resp)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeModal(t *testing.T) {
	m := NewModal("my_modal", "Provide input values.").WithField("f1", "A value").WithField("f2", "Another value")

	resp, err := Encode(discord.InteractionMessageComponent, m)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := &discord.Response{
		Type: discord.CallbackModal,
		Data: &discord.ResponseData{
			CustomID: "my_modal",
			Title:    "Provide input values.",
			Components: []discord.Component{
				{
					Type: discord.ComponentActionRow,
					Components: []discord.Component{
						{Type: discord.ComponentTextInput, Label: "A value", Style: discord.TextInputStyleShort, CustomID: "f1"},
					},
				},
				{
					Type: discord.ComponentActionRow,
					Components: []discord.Component{
						{Type: discord.ComponentTextInput, Label: "Another value", Style: discord.TextInputStyleShort, CustomID: "f2"},
					},
				},
			},
		},
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("Encode() = %+v, want %+v", resp, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		typ     discord.InteractionType
		resp    Response
		wantErr error
	}{
		{
			name:    "modal_after_modal_submit",
			typ:     discord.InteractionModalSubmit,
			resp:    NewModal("m", "t"),
			wantErr: ErrInvalidResponseTransition,
		},
		{
			name:    "modal_pointer_after_modal_submit",
			typ:     discord.InteractionModalSubmit,
			resp:    &Modal{ID: "m"},
			wantErr: ErrInvalidResponseTransition,
		},
		{
			name: "25_buttons",
			typ:  discord.InteractionApplicationCommand,
			resp: buttons(25),
		},
		{
			name:    "26_buttons",
			typ:     discord.InteractionApplicationCommand,
			resp:    buttons(26),
			wantErr: ErrTooManyComponents,
		},
		{
			name:    "6_fields",
			typ:     discord.InteractionApplicationCommand,
			resp:    Modal{Fields: make([]TextField, 6)},
			wantErr: ErrTooManyComponents,
		},
		{
			name:    "nil",
			typ:     discord.InteractionApplicationCommand,
			wantErr: ErrUnknownResponse,
		},
		{
			name:    "nil_message_pointer",
			typ:     discord.InteractionApplicationCommand,
			resp:    (*Message)(nil),
			wantErr: ErrUnknownResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.typ, tt.resp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Encode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageBuilderImmutable(t *testing.T) {
	base := NewMessage("hi").WithButton("a", "A")
	m1 := base.WithButton("b", "B")
	m2 := base.WithButton("c", "C")

	if len(base.Buttons) != 1 {
		t.Errorf("base message modified: %+v", base.Buttons)
	}
	if m1.Buttons[1].ID != "b" || m2.Buttons[1].ID != "c" {
		t.Errorf("derived messages share buttons: %+v, %+v", m1.Buttons, m2.Buttons)
	}
}
