package postgres

//nolint:revive
import (
	"fmt"
	"lendhub/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  createConnection("read", config.DB.Postgres.Read, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: createConnection("write", config.DB.Postgres.Write, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

type dbConfig = struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

func createConnection(name string, cfg dbConfig, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		net.JoinHostPort(cfg.Host, cfg.Port),
		cfg.Name,
		cfg.SSLMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", cfg.Host).
				Str("port", cfg.Port).
				Str("dbName", cfg.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", cfg.Host).
			Str("port", cfg.Port).
			Str("dbName", cfg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
