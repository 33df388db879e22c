// Package etcd reads the application's public key from an etcd
// key, as an alternative to configuring the key directly.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const (
	timeout = 3 * time.Second
)

var ErrKeyNotFound = errors.New("etcd key not found")

// PublicKey returns the hex-encoded public key that is stored in
// the etcd key which the CLI flags point to. It returns an
// empty string if no etcd key is configured.
func PublicKey(ctx context.Context, cmd *cli.Command) (string, error) {
	path := cmd.String("etcd-public-key-path")
	if path == "" {
		return "", nil
	}

	c, err := clientv3.New(clientv3.Config{
		Endpoints:   cmd.StringSlice("etcd-endpoint-urls"),
		DialTimeout: timeout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to initialize etcd client: %w", err)
	}
	defer c.Close()

	return Get(ctx, c, path)
}

// Get returns the value of a single etcd key, without surrounding whitespace.
func Get(ctx context.Context, kv clientv3.KV, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := kv.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Error().Stack().Err(err).Str("key", key).Send()
		return "", fmt.Errorf("failed to read etcd key: %w", err)
	}
	if len(resp.Kvs) == 0 {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return strings.TrimSpace(string(resp.Kvs[0].Value)), nil
}
