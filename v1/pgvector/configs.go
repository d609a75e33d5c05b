package pgvector

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the connection and pool settings for the pgvector backend.
type Config struct {
	Connection        Connection        `yaml:"connection"`
	ConnectionDetails ConnectionDetails `yaml:"connection_details"`

	// TablePrefix is prepended to every index table name.
	TablePrefix string `yaml:"table_prefix" env:"PGVECTOR_TABLE_PREFIX"`

	// CreateANNIndex adds an HNSW index on the embedding column of new tables.
	CreateANNIndex bool `yaml:"create_ann_index" env:"PGVECTOR_CREATE_ANN_INDEX"`
}

type Connection struct {
	Host     string `yaml:"host" env:"PGVECTOR_HOST"`
	Port     string `yaml:"port" env:"PGVECTOR_PORT"`
	User     string `yaml:"user" env:"PGVECTOR_USER"`
	Password string `yaml:"password" env:"PGVECTOR_PASSWORD"`
	DbName   string `yaml:"db_name" env:"PGVECTOR_DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"PGVECTOR_SSL_MODE"`
}

type ConnectionDetails struct {
	MaxConns        int32         `yaml:"max_conns" env:"PGVECTOR_MAX_CONNS"`
	MinConns        int32         `yaml:"min_conns" env:"PGVECTOR_MIN_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"PGVECTOR_CONN_MAX_LIFETIME"`
}

// DefaultConfig targets a local Postgres with the vector extension available.
func DefaultConfig() Config {
	return Config{
		Connection: Connection{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			DbName:  "postgres",
			SSLMode: "disable",
		},
		ConnectionDetails: ConnectionDetails{
			MaxConns:        10,
			ConnMaxLifetime: time.Hour,
		},
		TablePrefix:    "vs_",
		CreateANNIndex: true,
	}
}

// ConnString renders the connection as a postgres:// URL.
func (c Connection) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   "/" + c.DbName,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}
