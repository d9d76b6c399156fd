package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Upload UploadConfig
	LLM    LLMConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Debug reports whether the level is debug.
func (l *LogConfig) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(l.Level), "debug")
}

// Flags returns the standard logger flags for the level.
// Debug adds microseconds and the calling file.
func (l *LogConfig) Flags() int {
	if l.Debug() {
		return log.LstdFlags | log.Lmicroseconds | log.Lshortfile
	}
	return log.LstdFlags
}

// GinMode returns gin's debug mode only for debug logging outside production.
func (l *LogConfig) GinMode(environment string) string {
	if l.Debug() && environment != "production" {
		return "debug"
	}
	return "release"
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig limits transcript and outline uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ExportConfig holds spreadsheet export defaults.
type ExportConfig struct {
	SheetName string `mapstructure:"sheet_name"`
	Filename  string `mapstructure:"filename"`
	CSVBOM    bool   `mapstructure:"csv_bom"`
}

// ProviderConfig holds settings for a single LLM completion provider.
type ProviderConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	BaseURL      string  `mapstructure:"base_url"`
	MaxRetries   int     `mapstructure:"max_retries"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
	Temperature  float64 `mapstructure:"temperature"`
}

// LLMConfig holds completion provider settings with multi-provider support.
type LLMConfig struct {
	// Legacy flat fields (single provider)
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	DefaultModel string  `mapstructure:"default_model"`
	BaseURL      string  `mapstructure:"base_url"`
	MaxRetries   int     `mapstructure:"max_retries"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
	Temperature  float64 `mapstructure:"temperature"`

	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
	Tertiary  ProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (l *LLMConfig) PrimaryConfig() *ProviderConfig {
	if l.Primary.Provider != "" {
		return &l.Primary
	}
	return &ProviderConfig{
		Provider:     l.Provider,
		APIKey:       l.APIKey,
		DefaultModel: l.DefaultModel,
		BaseURL:      l.BaseURL,
		MaxRetries:   l.MaxRetries,
		TimeoutSecs:  l.TimeoutSecs,
		Temperature:  l.Temperature,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (l *LLMConfig) SecondaryConfig() *ProviderConfig {
	if l.Secondary.Provider != "" {
		return &l.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (l *LLMConfig) TertiaryConfig() *ProviderConfig {
	if l.Tertiary.Provider != "" {
		return &l.Tertiary
	}
	return nil
}

// Chain returns the configured providers in fallback order.
func (l *LLMConfig) Chain() []*ProviderConfig {
	chain := []*ProviderConfig{l.PrimaryConfig()}
	if s := l.SecondaryConfig(); s != nil {
		chain = append(chain, s)
	}
	if t := l.TertiaryConfig(); t != nil {
		chain = append(chain, t)
	}
	return chain
}

// Load reads configuration from an optional .env file and environment
// variables with the INTERVIEWDESK_ prefix.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INTERVIEWDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8501,http://127.0.0.1:8501")

	v.SetDefault("upload.max_file_size_mb", 20)

	v.SetDefault("export.sheet_name", "分析结果")
	v.SetDefault("export.filename", "分析结果")
	v.SetDefault("export.csv_bom", true)

	// LLM defaults (legacy flat)
	v.SetDefault("llm.provider", "deepseek")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.default_model", "deepseek-chat")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.timeout_secs", 180)
	v.SetDefault("llm.temperature", 0.7)

	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("llm."+tier+".provider", "")
		v.SetDefault("llm."+tier+".api_key", "")
		v.SetDefault("llm."+tier+".default_model", "")
		v.SetDefault("llm."+tier+".base_url", "")
		v.SetDefault("llm."+tier+".max_retries", 2)
		v.SetDefault("llm."+tier+".timeout_secs", 180)
		v.SetDefault("llm."+tier+".temperature", 0.7)
	}

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "INTERVIEWDESK_SERVER_PORT",
		"server.read_timeout":     "INTERVIEWDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "INTERVIEWDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":      "INTERVIEWDESK_SERVER_ENVIRONMENT",
		"log.level":               "INTERVIEWDESK_LOG_LEVEL",
		"cors.allowed_origins":    "INTERVIEWDESK_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "INTERVIEWDESK_UPLOAD_MAX_FILE_SIZE_MB",
		"export.sheet_name":       "INTERVIEWDESK_EXPORT_SHEET_NAME",
		"export.filename":         "INTERVIEWDESK_EXPORT_FILENAME",
		"export.csv_bom":          "INTERVIEWDESK_EXPORT_CSV_BOM",
		"llm.provider":            "INTERVIEWDESK_LLM_PROVIDER",
		"llm.api_key":             "INTERVIEWDESK_LLM_API_KEY",
		"llm.default_model":       "INTERVIEWDESK_LLM_DEFAULT_MODEL",
		"llm.base_url":            "INTERVIEWDESK_LLM_BASE_URL",
		"llm.max_retries":         "INTERVIEWDESK_LLM_MAX_RETRIES",
		"llm.timeout_secs":        "INTERVIEWDESK_LLM_TIMEOUT_SECS",
		"llm.temperature":         "INTERVIEWDESK_LLM_TEMPERATURE",
	}
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		for _, field := range []string{"provider", "api_key", "default_model", "base_url", "max_retries", "timeout_secs", "temperature"} {
			key := "llm." + tier + "." + field
			envBindings[key] = "INTERVIEWDESK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INTERVIEWDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INTERVIEWDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb")}

	cfg.Export = ExportConfig{
		SheetName: v.GetString("export.sheet_name"),
		Filename:  v.GetString("export.filename"),
		CSVBOM:    v.GetBool("export.csv_bom"),
	}

	// Older deployments set a bare DEEPSEEK_API_KEY; keep honouring it.
	apiKey := v.GetString("llm.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("DEEPSEEK_API_KEY")
	}

	cfg.LLM = LLMConfig{
		Provider:     v.GetString("llm.provider"),
		APIKey:       apiKey,
		DefaultModel: v.GetString("llm.default_model"),
		BaseURL:      v.GetString("llm.base_url"),
		MaxRetries:   v.GetInt("llm.max_retries"),
		TimeoutSecs:  v.GetInt("llm.timeout_secs"),
		Temperature:  v.GetFloat64("llm.temperature"),
		Primary:      providerConfig(v, "primary"),
		Secondary:    providerConfig(v, "secondary"),
		Tertiary:     providerConfig(v, "tertiary"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, tier string) ProviderConfig {
	prefix := "llm." + tier + "."
	return ProviderConfig{
		Provider:     v.GetString(prefix + "provider"),
		APIKey:       v.GetString(prefix + "api_key"),
		DefaultModel: v.GetString(prefix + "default_model"),
		BaseURL:      v.GetString(prefix + "base_url"),
		MaxRetries:   v.GetInt(prefix + "max_retries"),
		TimeoutSecs:  v.GetInt(prefix + "timeout_secs"),
		Temperature:  v.GetFloat64(prefix + "temperature"),
	}
}
