package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvToKey(t *testing.T) {
	cases := map[string]string{
		"SECRETKEY_TOKEN":           "secretkey.token",
		"POSTGRES_SSLMODE":          "postgres.sslmode",
		"HTTP_PORT":                 "http.port",
		"ENV_LOG_LEVEL":             "env.log.level",
		"AUTH_BCRYPTCOST":           "auth.bcryptcost",
		"POSTGRES_DBNAME":           "postgres.dbname",
		"ENV_DEBUG":                 "env.debug",
		"AUTH_TOKENTTL":             "auth.tokenttl",
		"ENV_SERVICENAME":           "env.servicename",
		"HTTP_TIMEOUTS_READTIMEOUT": "http.timeouts.readtimeout",
	}

	for envName, want := range cases {
		assert.Equal(t, want, EnvToKey(envName), "env var %s", envName)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "persona",
		Password: "secret",
		DBName:   "persona",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=persona")
	// SSL mode falls back to disable when unset.
	assert.Contains(t, dsn, "sslmode=disable")
}
