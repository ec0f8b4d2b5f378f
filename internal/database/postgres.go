package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"vacstore/internal/common"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds a postgres connection URL from the individual parameters.
// The password is URL-escaped so special characters do not break the DSN.
func (c PostgresConfig) DSN() string {
	hostPort := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		url.QueryEscape(c.Password),
		hostPort,
		c.Name,
		c.SSLMode,
	)
}

const connectDeadline = 30 * time.Second

// Connect dials a single persistent connection. Every statement on it
// auto-commits; the connection is not safe for concurrent use.
func Connect(ctx context.Context, cfg PostgresConfig, logger zerolog.Logger) (*pgx.Conn, error) {
	deadline := time.Now().Add(connectDeadline)
	backoff := 500 * time.Millisecond
	for {
		conn, err := pgx.Connect(ctx, cfg.DSN())
		if err == nil {
			pingErr := conn.Ping(ctx)
			if pingErr == nil {
				return conn, nil
			}
			_ = conn.Close(ctx)
			err = pingErr
		}
		if time.Now().After(deadline) {
			return nil, common.NewError(common.CodeConnection, "failed to connect to postgres", err)
		}
		logger.Warn().Err(err).Msg("postgres not ready yet")
		select {
		case <-ctx.Done():
			return nil, common.NewError(common.CodeConnection, "failed to connect to postgres", ctx.Err())
		case <-time.After(backoff):
		}
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
}
