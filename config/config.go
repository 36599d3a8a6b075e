package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTrendWindowDays    = 30
	defaultMailBatchSize      = 50
	defaultClientTimeout      = 10 * time.Second
	defaultRouteTTL           = 10 * time.Minute
	defaultDashboardTTL       = time.Minute
	defaultInviteTTL          = 72 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Session configuration for verifying tokens issued by the auth provider
	Session *SessionConfig `json:"session" yaml:"session"`

	// Redis configuration for route and dashboard caches
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Mail configuration for the transactional email provider
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub configuration for broadcast batches
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// CMS configuration for the headless content store
	CMS *CMSConfig `json:"cms" yaml:"cms"`

	// Assets configuration for product image storage
	Assets *AssetsConfig `json:"assets" yaml:"assets"`

	// QRCode configuration for playlist QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	Team *TeamConfig `json:"team" yaml:"team"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig selects how bearer tokens are verified.
type SessionConfig struct {
	// Provider type: "jwt" for HS256 shared secret or "firebase" for Firebase ID tokens
	Provider string `json:"provider" yaml:"provider"`

	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string `json:"issuer" yaml:"issuer"`
	Audience  string `json:"audience" yaml:"audience"`

	// Firebase project (for firebase provider)
	FirebaseProjectID       string `json:"firebaseProjectId" yaml:"firebaseProjectId"`
	FirebaseCredentialsPath string `json:"firebaseCredentialsPath" yaml:"firebaseCredentialsPath"`
}

// RedisConfig defines the cache connection and entry lifetimes
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	RouteTTL     time.Duration `json:"routeTtl" yaml:"routeTtl"`
	DashboardTTL time.Duration `json:"dashboardTtl" yaml:"dashboardTtl"`
	ContentTTL   time.Duration `json:"contentTtl" yaml:"contentTtl"`
}

// MailConfig defines the transactional email provider
type MailConfig struct {
	// Provider type: "api", "smtp" or empty for a logging no-op
	Provider   string        `json:"provider" yaml:"provider"`
	APIBaseURL string        `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	APIKey     string        `json:"apiKey" yaml:"apiKey"`
	From       string        `json:"from" yaml:"from"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	BatchSize  int           `json:"batchSize" yaml:"batchSize"`
	SMTP       SMTPConfig    `json:"smtp" yaml:"smtp"`
}

// SMTPConfig defines the relay used by the smtp provider
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CMSConfig defines the headless CMS endpoints and credentials
type CMSConfig struct {
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	Dataset    string        `json:"dataset" yaml:"dataset"`
	ReadToken  string        `json:"readToken" yaml:"readToken"`
	WriteToken string        `json:"writeToken" yaml:"writeToken"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// AssetsConfig defines where uploaded product images are stored
type AssetsConfig struct {
	// gocloud bucket URL, e.g. file:///var/assets, gs://bucket, mem://
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// AnalyticsConfig tunes the dashboard aggregation
type AnalyticsConfig struct {
	TrendWindowDays int `json:"trendWindowDays" yaml:"trendWindowDays"`
}

// TeamConfig defines the team invitation flow
type TeamConfig struct {
	InviteTTL     time.Duration `json:"inviteTtl" yaml:"inviteTtl"`
	InviteBaseURL string        `json:"inviteBaseUrl" yaml:"inviteBaseUrl"`
	BcryptCost    int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{}
	}
	if cfg.Analytics.TrendWindowDays <= 0 {
		cfg.Analytics.TrendWindowDays = defaultTrendWindowDays
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if cfg.Mail.BatchSize <= 0 || cfg.Mail.BatchSize > defaultMailBatchSize {
		cfg.Mail.BatchSize = defaultMailBatchSize
	}
	if cfg.Mail.Timeout <= 0 {
		cfg.Mail.Timeout = defaultClientTimeout
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.RouteTTL <= 0 {
		cfg.Redis.RouteTTL = defaultRouteTTL
	}
	if cfg.Redis.DashboardTTL <= 0 {
		cfg.Redis.DashboardTTL = defaultDashboardTTL
	}
	if cfg.Redis.ContentTTL <= 0 {
		cfg.Redis.ContentTTL = defaultRouteTTL
	}

	if cfg.CMS == nil {
		cfg.CMS = &CMSConfig{}
	}
	if cfg.CMS.Timeout <= 0 {
		cfg.CMS.Timeout = defaultClientTimeout
	}

	if cfg.Team == nil {
		cfg.Team = &TeamConfig{}
	}
	if cfg.Team.InviteTTL <= 0 {
		cfg.Team.InviteTTL = defaultInviteTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
