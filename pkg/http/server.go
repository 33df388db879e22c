package http

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ponder-labs/interactor/pkg/discord"
	"github.com/ponder-labs/interactor/pkg/interactions"
	"github.com/ponder-labs/interactor/pkg/metrics"
)

const (
	InteractionsPath = "/interactions"

	// Discord expects a reply to every interaction within 3 seconds.
	timeout = 3 * time.Second

	maxBodySize = 1 << 20 // 1 MiB.
)

type httpServer struct {
	httpPort int

	// Read-only after initialization, shared by all requests.
	verifier     *discord.Verifier
	dispatcher   *interactions.Dispatcher
	decodePolicy DecodeFailurePolicy
	metrics      *metrics.Metrics
}

func newHTTPServer(ctx context.Context, cmd *cli.Command, h interactions.Handler) (*httpServer, error) {
	policy, err := ParseDecodeFailurePolicy(cmd.String("decode-failure-policy"))
	if err != nil {
		return nil, err
	}

	key, err := publicKey(ctx, cmd)
	if err != nil {
		return nil, err
	}

	v, err := discord.NewVerifier(key)
	if err != nil {
		return nil, err
	}

	return &httpServer{
		httpPort:     cmd.Int("http-port"),
		verifier:     v,
		dispatcher:   interactions.NewDispatcher(h),
		decodePolicy: policy,
		metrics:      metrics.New(),
	}, nil
}

func (s *httpServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post(InteractionsPath, s.interactionsHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// run starts an HTTP server to receive interaction webhooks.
// This is blocking, to keep the Interactor server running.
func (s *httpServer) run() error {
	server := &http.Server{
		Addr:         net.JoinHostPort("", strconv.Itoa(s.httpPort)),
		Handler:      s.router(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	log.Info().Msgf("HTTP server listening on port %d", s.httpPort)
	err := server.ListenAndServe()
	if err != nil {
		log.Err(err).Send()
		return err
	}

	return nil
}
