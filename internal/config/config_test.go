package config_test

import (
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewdesk/internal/config"
)

func TestLLMConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	cfg := config.LLMConfig{
		Provider:     "deepseek",
		APIKey:       "sk-legacy",
		DefaultModel: "deepseek-chat",
		MaxRetries:   3,
		TimeoutSecs:  30,
		Temperature:  0.7,
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "deepseek", primary.Provider)
	assert.Equal(t, "sk-legacy", primary.APIKey)
	assert.Equal(t, "deepseek-chat", primary.DefaultModel)
	assert.Equal(t, 3, primary.MaxRetries)
	assert.Equal(t, 30, primary.TimeoutSecs)
	assert.InDelta(t, 0.7, primary.Temperature, 1e-9)
}

func TestLLMConfig_PrimaryConfig_ExplicitPrimary(t *testing.T) {
	cfg := config.LLMConfig{
		Provider: "legacy-should-be-ignored",
		Primary: config.ProviderConfig{
			Provider:     "openai",
			APIKey:       "sk-primary",
			DefaultModel: "gpt-4o",
		},
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "openai", primary.Provider)
	assert.Equal(t, "sk-primary", primary.APIKey)
	assert.Equal(t, "gpt-4o", primary.DefaultModel)
}

func TestLLMConfig_SecondaryAndTertiary_NotConfigured(t *testing.T) {
	cfg := config.LLMConfig{Provider: "deepseek", APIKey: "sk-test"}

	assert.Nil(t, cfg.SecondaryConfig())
	assert.Nil(t, cfg.TertiaryConfig())
	assert.Len(t, cfg.Chain(), 1)
}

func TestLLMConfig_Chain_Order(t *testing.T) {
	cfg := config.LLMConfig{
		Primary:   config.ProviderConfig{Provider: "deepseek"},
		Secondary: config.ProviderConfig{Provider: "openai"},
		Tertiary:  config.ProviderConfig{Provider: "claude"},
	}

	chain := cfg.Chain()

	require.Len(t, chain, 3)
	assert.Equal(t, "deepseek", chain[0].Provider)
	assert.Equal(t, "openai", chain[1].Provider)
	assert.Equal(t, "claude", chain[2].Provider)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEEPSEEK_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "deepseek-chat", cfg.LLM.DefaultModel)
	assert.Equal(t, int64(20), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(20*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, "分析结果", cfg.Export.SheetName)
	assert.True(t, cfg.Export.CSVBOM)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INTERVIEWDESK_LLM_PRIMARY_PROVIDER", "openai")
	t.Setenv("INTERVIEWDESK_LLM_PRIMARY_API_KEY", "sk-env")
	t.Setenv("INTERVIEWDESK_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("INTERVIEWDESK_SERVER_PORT", "")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.PrimaryConfig().Provider)
	assert.Equal(t, "sk-env", cfg.LLM.PrimaryConfig().APIKey)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
}

func TestLoad_LegacyDeepSeekKey(t *testing.T) {
	t.Setenv("INTERVIEWDESK_LLM_API_KEY", "")
	t.Setenv("DEEPSEEK_API_KEY", "sk-deepseek")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-deepseek", cfg.LLM.APIKey)
	assert.Equal(t, "sk-deepseek", cfg.LLM.PrimaryConfig().APIKey)
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("INTERVIEWDESK_LOG_LEVEL", "info")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Debug())
	assert.Equal(t, log.LstdFlags, cfg.Log.Flags())
	assert.Equal(t, "release", cfg.Log.GinMode("development"))
}

func TestLogConfig_Modes(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		environment string
		wantFlags   int
		wantGinMode string
	}{
		{"debug in development", "debug", "development", log.LstdFlags | log.Lmicroseconds | log.Lshortfile, "debug"},
		{"debug in production", "DEBUG", "production", log.LstdFlags | log.Lmicroseconds | log.Lshortfile, "release"},
		{"info", "info", "development", log.LstdFlags, "release"},
		{"empty", "", "development", log.LstdFlags, "release"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := config.LogConfig{Level: tt.level}
			assert.Equal(t, tt.wantFlags, l.Flags())
			assert.Equal(t, tt.wantGinMode, l.GinMode(tt.environment))
		})
	}
}
