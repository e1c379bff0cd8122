package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 4000, cfg.HTTP.Port, "el puerto por defecto es 4000")
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "unit-test-secret", cfg.JWT.Secret)
}

func TestLoad_SinJWTSecret_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err, "el secreto de firma jamás tiene valor por defecto")
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "employee_directory", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "la contraseña va URL-encoded")
}

func TestDBConfig_ConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/x?sslmode=require",
		Host:        "ignored",
	}
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=require", db.ConnectionString())
}
