package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ponder-labs/interactor/pkg/discord"
	"github.com/ponder-labs/interactor/pkg/interactions"
	"github.com/ponder-labs/interactor/pkg/metrics"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"

	// Metric label, before the interaction's type is known.
	unknownKind = "unknown"
)

// interactionsHandler authenticates, decodes, dispatches, and replies
// to a single interaction. Every request gets exactly one reply.
func (s *httpServer) interactionsHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	start := time.Now()

	l := log.With().Str("http_method", r.Method).Str("url_path", r.URL.EscapedPath()).Logger()
	l.Debug().Msg("received HTTP request")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		statusCode := http.StatusBadRequest
		if mbe := new(http.MaxBytesError); errors.As(err, &mbe) {
			statusCode = http.StatusRequestEntityTooLarge
		}
		l.Warn().Err(err).Msg("bad request: failed to read body")
		s.metrics.Observe(unknownKind, metrics.OutcomeBadRequest, start)
		w.WriteHeader(statusCode)
		return
	}

	// The raw body, not a re-encoding of it, is what Discord signed.
	if err := s.verifier.Verify(r.Header, body); err != nil {
		statusCode, outcome := verifyStatus(err)
		l.Warn().Err(err).Msg("interaction authentication failed")
		s.metrics.Observe(unknownKind, outcome, start)
		w.WriteHeader(statusCode)
		return
	}

	in := new(discord.Interaction)
	if err := json.Unmarshal(body, in); err != nil {
		s.decodeFailure(w, l, unknownKind, err, start)
		return
	}

	id := in.ID
	if id == "" {
		id = shortuuid.New()
	}
	kind := in.Type.String()
	l = l.With().Str("interaction_id", id).Str("kind", kind).Logger()
	l.Debug().RawJSON("request_json", body).Send()

	resp, err := s.dispatcher.Dispatch(l.WithContext(r.Context()), in)
	if err != nil {
		s.dispatchFailure(w, l, kind, err, start)
		return
	}

	b, err := marshal(resp)
	if err != nil {
		l.Err(err).Msg("failed to encode interaction response")
		s.metrics.Observe(kind, metrics.OutcomeHandlerError, start)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	l.Debug().RawJSON("response_json", b).Send()
	s.metrics.Observe(kind, metrics.OutcomeOK, start)
	writeJSON(w, l, b)
}

func verifyStatus(err error) (int, string) {
	switch {
	case errors.Is(err, discord.ErrUnauthorized):
		return http.StatusUnauthorized, metrics.OutcomeUnauthorized
	case errors.Is(err, discord.ErrBadRequest):
		return http.StatusBadRequest, metrics.OutcomeBadRequest
	default:
		return http.StatusInternalServerError, metrics.OutcomeConfigError
	}
}

// decodeFailure replies to an authenticated request whose
// payload is not a decodable interaction, based on the server's policy.
func (s *httpServer) decodeFailure(w http.ResponseWriter, l zerolog.Logger, kind string, err error, start time.Time) {
	s.metrics.Observe(kind, metrics.OutcomeDecodeError, start)

	if s.decodePolicy == RejectDecodeFailures {
		l.Warn().Err(err).Msg("bad request: undecodable interaction")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	l.Warn().Err(err).Msg("acknowledging undecodable interaction with an empty reply")
	writeJSON(w, l, []byte("{}"))
}

func (s *httpServer) dispatchFailure(w http.ResponseWriter, l zerolog.Logger, kind string, err error, start time.Time) {
	if de := new(interactions.DecodeError); errors.As(err, &de) {
		s.decodeFailure(w, l, kind, err, start)
		return
	}

	switch {
	case errors.Is(err, interactions.ErrUnhandled):
		l.Warn().Err(err).Msg("interaction not handled by the application")
		s.metrics.Observe(kind, metrics.OutcomeUnhandled, start)
		w.WriteHeader(http.StatusNotImplemented)

	case errors.Is(err, interactions.ErrInvalidResponseTransition):
		l.Error().Err(err).Msg("handler contract violation")
		s.metrics.Observe(kind, metrics.OutcomeInvalidTransition, start)
		w.WriteHeader(http.StatusInternalServerError)

	default:
		l.Error().Err(err).Msg("failed to handle interaction")
		s.metrics.Observe(kind, metrics.OutcomeHandlerError, start)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, l zerolog.Logger, b []byte) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		l.Err(err).Msg("failed to write HTTP response")
	}
}

// marshal encodes a response without escaping HTML characters,
// which are common in message text (e.g. user mentions like "<@123>").
func marshal(resp *discord.Response) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
