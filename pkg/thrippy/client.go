// Package thrippy reads the application's public key from the secrets of a
// [Thrippy] link, as an alternative to configuring the key directly.
//
// [Thrippy]: https://github.com/tzrikka/thrippy
package thrippy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	thrippypb "github.com/tzrikka/thrippy-api/thrippy/v1"
)

const (
	DefaultServerAddr = "localhost:14460"

	// PublicKeySecret is the name of the link secret that holds the hex-encoded key.
	PublicKeySecret = "public_key"

	timeout = 3 * time.Second
)

var ErrLinkNotFound = errors.New("thrippy link not found or has no secrets")

// Flags defines CLI flags to configure a Thrippy gRPC client. These flags can also
// be set using environment variables and the application's configuration file.
func Flags(configFilePath altsrc.StringSourcer) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "thrippy-server-addr",
			Usage: "Thrippy gRPC server address",
			Value: DefaultServerAddr,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("THRIPPY_SERVER_ADDR"),
				toml.TOML("thrippy.server_addr", configFilePath),
			),
		},
		&cli.StringFlag{
			Name:  "thrippy-server-ca-cert",
			Usage: "Thrippy server's CA certificate file, for TLS (insecure if empty)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("THRIPPY_SERVER_CA_CERT"),
				toml.TOML("thrippy.server_ca_cert", configFilePath),
			),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "thrippy-link-id",
			Usage: "Thrippy link whose secrets contain the application's public key",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("THRIPPY_LINK_ID"),
				toml.TOML("thrippy.link_id", configFilePath),
			),
		},
	}
}

// SecureCreds returns TLS client credentials based on the CLI flags,
// or insecure credentials if no CA certificate file is configured.
func SecureCreds(cmd *cli.Command) (credentials.TransportCredentials, error) {
	path := cmd.String("thrippy-server-ca-cert")
	if path == "" {
		return insecure.NewCredentials(), nil
	}

	creds, err := credentials.NewClientTLSFromFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load Thrippy server's CA certificate: %w", err)
	}
	return creds, nil
}

// Connection creates a gRPC client connection to the given Thrippy server address.
// It supports both secure and insecure connections, based on the given credentials.
func Connection(addr string, creds credentials.TransportCredentials) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
}

// LinkSecrets returns the saved secrets of a given Thrippy link.
// This function reports gRPC errors, but if the link is not found it returns nothing.
func LinkSecrets(ctx context.Context, grpcAddr string, creds credentials.TransportCredentials, linkID string) (map[string]string, error) {
	l := zerolog.Ctx(ctx)

	conn, err := Connection(grpcAddr, creds)
	if err != nil {
		l.Error().Stack().Err(err).Send()
		return nil, err
	}
	defer conn.Close()

	c := thrippypb.NewThrippyServiceClient(conn)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.GetCredentials(ctx, thrippypb.GetCredentialsRequest_builder{
		LinkId: proto.String(linkID),
	}.Build())
	if err != nil {
		if status.Code(err) != codes.NotFound {
			l.Error().Stack().Err(err).Send()
			return nil, err
		}
		return nil, nil
	}

	return resp.GetCredentials(), nil
}

// PublicKey returns the hex-encoded public key that is stored in
// the secrets of the Thrippy link which the CLI flags point to.
// It returns an empty string if no link is configured.
func PublicKey(ctx context.Context, cmd *cli.Command) (string, error) {
	id := cmd.String("thrippy-link-id")
	if id == "" {
		return "", nil
	}

	creds, err := SecureCreds(cmd)
	if err != nil {
		return "", err
	}

	m, err := LinkSecrets(ctx, cmd.String("thrippy-server-addr"), creds, id)
	if err != nil {
		return "", fmt.Errorf("failed to get Thrippy link secrets: %w", err)
	}
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrLinkNotFound, id)
	}

	return m[PublicKeySecret], nil
}
