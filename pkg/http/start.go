package http

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/urfave/cli/v3"

	"github.com/ponder-labs/interactor/pkg/discord"
	"github.com/ponder-labs/interactor/pkg/etcd"
	"github.com/ponder-labs/interactor/pkg/interactions"
	"github.com/ponder-labs/interactor/pkg/thrippy"
)

// Start returns a CLI action that initializes logging and configuration,
// and then runs an HTTP server which dispatches interactions to the given handler.
func Start(h interactions.Handler) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		initLog(cmd.Bool("dev"))

		s, err := newHTTPServer(log.Logger.WithContext(ctx), cmd, h)
		if err != nil {
			log.Err(err).Msg("invalid configuration")
			return err
		}

		return s.run()
	}
}

// initLog initializes the logger for the Interactor server,
// based on whether it's running in development mode or not.
func initLog(devMode bool) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	if !devMode {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05.000",
	}).With().Caller().Logger()

	log.Warn().Msg("********** DEV MODE - UNSAFE IN PRODUCTION! **********")
}

// publicKey resolves the application's public key exactly once, at startup:
// from the CLI flag (or its environment variable or configuration file
// equivalents), or else from a Thrippy link, or else from etcd.
func publicKey(ctx context.Context, cmd *cli.Command) (string, error) {
	if k := cmd.String("public-key"); k != "" {
		return k, nil
	}

	k, err := thrippy.PublicKey(ctx, cmd)
	if err != nil {
		return "", err
	}
	if k != "" {
		log.Info().Msg("using public key from Thrippy link")
		return k, nil
	}

	k, err = etcd.PublicKey(ctx, cmd)
	if err != nil {
		return "", err
	}
	if k != "" {
		log.Info().Msg("using public key from etcd")
		return k, nil
	}

	return "", fmt.Errorf("%w: no public key configured", discord.ErrConfig)
}
