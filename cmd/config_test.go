package cmd_test

import (
	"testing"

	"supplychain/cmd"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_ReadsProcessEnvironmentWithoutDotEnvFile(t *testing.T) {
	// Given variables provided by the process environment only
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "supplychain")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ROLE_SOURCE", "group")

	// When configuration is loaded with no .env file present
	config := cmd.LoadConfig()

	// Then the environment values populate the config
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "db", config.DBHost)
	assert.Equal(t, "supplychain", config.DBName)
	assert.Equal(t, "test-secret", config.JWTSecret)
	assert.Equal(t, "group", config.RoleSource)
}

func TestLoadConfig_MissingVariablesAreEmpty(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")

	config := cmd.LoadConfig()

	assert.Empty(t, config.AdminUsername)
}
