package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:            "production",
		Port:           "8080",
		DBDriver:       "postgres",
		DBSSLMode:      "require",
		DBPassword:     "secure-password",
		DBSchemaMode:   "sql",
		AdminSecretKey: "an-admin-secret-that-is-long-enough-123",
	}
}

func TestConfig_ValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", true},
		{"Production with disable SSL mode", "production", "disable", true},
		{"Production with require SSL mode", "production", "require", false},
		{"Prod with disable SSL mode", "prod", "disable", true},
		{"Prod with verify-full SSL mode", "prod", "verify-full", false},
		{"Development with disable SSL mode", "development", "disable", false},
		{"Test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = tt.env
			c.DBSSLMode = tt.sslMode

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateAdminSecret(t *testing.T) {
	c := validConfig()
	c.AdminSecretKey = defaultAdminSecretKey
	assert.Error(t, c.Validate())

	c.AdminSecretKey = "short"
	assert.Error(t, c.Validate())

	// An empty key disables the admin console instead of failing startup.
	c.AdminSecretKey = ""
	assert.NoError(t, c.Validate())

	c.Env = "development"
	c.AdminSecretKey = "short"
	assert.NoError(t, c.Validate())
}

func TestConfig_ValidateFeatureFlags(t *testing.T) {
	c := validConfig()
	c.FeatureFlags = "legacy_routes=sometimes"
	assert.ErrorContains(t, c.Validate(), "FEATURE_FLAGS")

	// The admin key is only enforced while the console is on.
	c = validConfig()
	c.FeatureFlags = "admin_console=off"
	c.AdminSecretKey = "short"
	assert.NoError(t, c.Validate())
}

func TestConfig_ValidateDriverAndSchemaMode(t *testing.T) {
	c := validConfig()
	c.DBDriver = "mysql"
	assert.ErrorContains(t, c.Validate(), "DB_DRIVER")

	c = validConfig()
	c.DBSchemaMode = "yolo"
	assert.ErrorContains(t, c.Validate(), "DB_SCHEMA_MODE")

	c = validConfig()
	c.DBDriver = "sqlite"
	c.DBSSLMode = ""
	c.DBPassword = ""
	assert.NoError(t, c.Validate(), "sqlite does not need postgres credentials")
}

func TestConfig_ValidateSampleRatio(t *testing.T) {
	c := validConfig()
	c.TracingSampleRatio = 1.5
	assert.Error(t, c.Validate())
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", c.DBDriver)
	assert.Equal(t, "hybrid", c.DBSchemaMode)
	assert.Equal(t, 25, c.DBMaxOpenConns)
	assert.Contains(t, c.FeatureFlags, "legacy_routes=on")
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_MissingProfileFile(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "staging-nonexistent")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config.staging-nonexistent.yml")
}
