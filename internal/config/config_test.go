package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TEMPERATURE", "GEMINI_MAX_OUTPUT_TOKENS",
		"UPLOAD_PATH", "MAX_FILE_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, int32(8192), cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_WRITE_TIMEOUT", "45s")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.2")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "2048")
	t.Setenv("MAX_FILE_SIZE", "1024")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.2, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, int32(2048), cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, int64(1024), cfg.Storage.MaxFileSize)

	llmCfg := cfg.LLM()
	assert.Equal(t, "secret", llmCfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", llmCfg.Model)
	assert.Equal(t, int32(2048), llmCfg.MaxOutputTokens)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("GEMINI_TEMPERATURE", "warm")
	t.Setenv("MAX_FILE_SIZE", "ten")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			Env:          "test",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:          "secret",
			Model:           "gemini-2.5-flash",
			Temperature:     0.7,
			MaxOutputTokens: 8192,
		},
		Storage: StorageConfig{
			UploadPath:  "./uploads",
			MaxFileSize: 1024,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing api key", mutate: func(c *Config) { c.Gemini.APIKey = "" }, wantErr: "APIKey"},
		{name: "non-numeric port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: "Port"},
		{name: "unknown env", mutate: func(c *Config) { c.Server.Env = "staging" }, wantErr: "Env"},
		{name: "temperature too high", mutate: func(c *Config) { c.Gemini.Temperature = 3 }, wantErr: "Temperature"},
		{name: "zero output tokens", mutate: func(c *Config) { c.Gemini.MaxOutputTokens = 0 }, wantErr: "MaxOutputTokens"},
		{name: "zero file size", mutate: func(c *Config) { c.Storage.MaxFileSize = 0 }, wantErr: "MaxFileSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
