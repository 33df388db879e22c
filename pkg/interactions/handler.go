package interactions

import "context"

// Handler implements an application's behavior for the non-ping interaction kinds.
// Implementations should embed [UnimplementedHandler], and override only the
// methods they support. Methods may also return [ErrUnhandled] themselves,
// for requests they do not recognize.
//
// The context carries a request-scoped [zerolog.Logger], see [zerolog.Ctx].
type Handler interface {
	HandleApplicationCommand(ctx context.Context, req ApplicationCommand) (Response, error)
	HandleMessageComponent(ctx context.Context, req MessageComponent) (Response, error)
	HandleModalSubmit(ctx context.Context, req ModalSubmit) (Response, error)
}

// UnimplementedHandler returns [ErrUnhandled] for every interaction.
type UnimplementedHandler struct{}

func (UnimplementedHandler) HandleApplicationCommand(context.Context, ApplicationCommand) (Response, error) {
	return nil, ErrUnhandled
}

func (UnimplementedHandler) HandleMessageComponent(context.Context, MessageComponent) (Response, error) {
	return nil, ErrUnhandled
}

func (UnimplementedHandler) HandleModalSubmit(context.Context, ModalSubmit) (Response, error) {
	return nil, ErrUnhandled
}

// HandlerFuncs is a [Handler] built from optional functions.
// A nil function returns [ErrUnhandled].
type HandlerFuncs struct {
	ApplicationCommand func(context.Context, ApplicationCommand) (Response, error)
	MessageComponent   func(context.Context, MessageComponent) (Response, error)
	ModalSubmit        func(context.Context, ModalSubmit) (Response, error)
}

func (h HandlerFuncs) HandleApplicationCommand(ctx context.Context, req ApplicationCommand) (Response, error) {
	if h.ApplicationCommand == nil {
		return nil, ErrUnhandled
	}
	return h.ApplicationCommand(ctx, req)
}

func (h HandlerFuncs) HandleMessageComponent(ctx context.Context, req MessageComponent) (Response, error) {
	if h.MessageComponent == nil {
		return nil, ErrUnhandled
	}
	return h.MessageComponent(ctx, req)
}

func (h HandlerFuncs) HandleModalSubmit(ctx context.Context, req ModalSubmit) (Response, error) {
	if h.ModalSubmit == nil {
		return nil, ErrUnhandled
	}
	return h.ModalSubmit(ctx, req)
}
