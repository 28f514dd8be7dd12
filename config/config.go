package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	LLMQuota LLMQuotaConfig `yaml:"llm_quota"`
	Upload   UploadConfig   `yaml:"upload"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// ProcessTimeoutSeconds bounds a single extraction/generation request.
	ProcessTimeoutSeconds int      `yaml:"process_timeout_seconds"`
	AllowedOrigins        []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type GeminiConfig struct {
	// Model is the text model used by all JSON-output flows.
	Model string `yaml:"model"`
	// TTSModel is the speech model used by the audio summary flow.
	TTSModel string `yaml:"tts_model"`
	// Voice is the prebuilt voice name for speech generation.
	Voice string `yaml:"voice"`
}

// LLMQuotaConfig defines per-minute/daily limits for LLM calls.
// Values of 0 or below mean no limit in that direction.
type LLMQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type UploadConfig struct {
	// MaxFileSizeMB is the upload ceiling; a file of exactly this size is
	// accepted, one byte over is rejected.
	MaxFileSizeMB int `yaml:"max_file_size_mb"`
}

// Load reads .env and config.yaml and returns the resolved configuration.
// Secrets (GEMINI_API_KEY, JWT_SECRET, MONGO_URI) come from the environment;
// everything else lives in config.yaml. The result is passed explicitly to
// whatever needs it; there is no process-wide config singleton.
func Load() (*AppConfig, error) {
	godotenv.Load(filepath.Join(BasePath(), ENV_FILE))

	data, err := os.ReadFile(filepath.Join(BasePath(), CONFIG_FILE))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
	}
	c.applyDefaults()

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	return &c, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ProcessTimeoutSeconds <= 0 {
		c.Server.ProcessTimeoutSeconds = 300
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "doclens"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TTSModel == "" {
		c.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if c.Gemini.Voice == "" {
		c.Gemini.Voice = "Algenib"
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		c.Upload.MaxFileSizeMB = 150
	}
}

// BasePath walks up from the working directory until it finds config.yaml,
// so tests and binaries can run from any subdirectory of the repo.
func BasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
