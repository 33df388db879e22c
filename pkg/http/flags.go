package http

import (
	"fmt"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

const (
	DefaultPort = 14480
)

// DecodeFailurePolicy determines the reply to an authenticated
// request whose payload cannot be decoded into an interaction.
type DecodeFailurePolicy string

const (
	// AckDecodeFailures replies with 200 and an empty JSON object. This hides
	// payload bugs, but prevents Discord from flagging the endpoint as broken
	// when it sends payloads that this server doesn't understand yet.
	AckDecodeFailures DecodeFailurePolicy = "ack"
	// RejectDecodeFailures replies with 400.
	RejectDecodeFailures DecodeFailurePolicy = "reject"
)

func ParseDecodeFailurePolicy(s string) (DecodeFailurePolicy, error) {
	switch p := DecodeFailurePolicy(s); p {
	case AckDecodeFailures, RejectDecodeFailures:
		return p, nil
	default:
		return "", fmt.Errorf("invalid decode failure policy %q (want %q or %q)", s, AckDecodeFailures, RejectDecodeFailures)
	}
}

// Flags defines CLI flags to configure the HTTP server. These flags can also
// be set using environment variables and the application's configuration file.
func Flags(configFilePath altsrc.StringSourcer) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "http-port",
			Usage: "local port number for the interactions webhook",
			Value: DefaultPort,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("INTERACTOR_HTTP_PORT"),
				toml.TOML("http.port", configFilePath),
			),
		},
		&cli.StringFlag{
			Name:  "public-key",
			Usage: "Discord application's public key (hex-encoded)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DISCORD_PUBLIC_KEY"),
				toml.TOML("discord.public_key", configFilePath),
			),
		},
		&cli.StringFlag{
			Name:  "decode-failure-policy",
			Usage: fmt.Sprintf("reply to undecodable interactions: %q (200) or %q (400)", AckDecodeFailures, RejectDecodeFailures),
			Value: string(AckDecodeFailures),
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("INTERACTOR_DECODE_FAILURE_POLICY"),
				toml.TOML("http.decode_failure_policy", configFilePath),
			),
		},
	}
}
