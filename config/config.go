package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

// Reminder dispatch policies.
const (
	ReminderPolicyOnce  = "once"
	ReminderPolicyDaily = "daily"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Tokens configures the security token lifecycle (TTLs, quotas, purge).
	Tokens *TokenConfig `json:"tokens" yaml:"tokens"`

	// AutoCancel configures the confirm-or-lose appointment sweep.
	AutoCancel *AutoCancelConfig `json:"autoCancel" yaml:"autoCancel"`

	// Reminder configures the daily confirmation reminder sweep.
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Notifier configures the outbound notification webhook.
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// TimeZone is the fixed reference zone for every schedule computation.
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
}

// TokenConfig defines the token lifecycle policy surface.
type TokenConfig struct {
	ActivationTTL     time.Duration `json:"activationTTL" yaml:"activationTTL"`
	PasswordResetTTL  time.Duration `json:"passwordResetTTL" yaml:"passwordResetTTL"`
	DeepLinkTTL       time.Duration `json:"deepLinkTTL" yaml:"deepLinkTTL"`
	MaxActivePerOwner int           `json:"maxActivePerOwner" yaml:"maxActivePerOwner"`
	UsedRetention     time.Duration `json:"usedRetention" yaml:"usedRetention"`
	PurgeInterval     time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
}

// AutoCancelConfig defines the auto-cancellation sweep policy.
type AutoCancelConfig struct {
	Enabled       bool          `json:"enabled" yaml:"enabled"`
	LeadHours     int           `json:"leadHours" yaml:"leadHours"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	SoftTimeout   time.Duration `json:"softTimeout" yaml:"softTimeout"`
}

// ReminderConfig defines the reminder sweep policy.
type ReminderConfig struct {
	WindowDays  int           `json:"windowDays" yaml:"windowDays"`
	Policy      string        `json:"policy" yaml:"policy"` // "once" or "daily"
	RunAt       string        `json:"runAt" yaml:"runAt"`   // wall clock "HH:MM" in the reference zone
	SoftTimeout time.Duration `json:"softTimeout" yaml:"softTimeout"`
}

// NotifierConfig defines the outbound webhook endpoint.
type NotifierConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf, with env var overrides.
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a dotted path and align each segment with
			// existing YAML keys. Example: TOKENS_ACTIVATIONTTL -> tokens.activationTTL
			return canonicalizeEnvKey(k, existingConfigMap), v
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

	cfg.applyDefaults()

	if cfg.Reminder.Policy != ReminderPolicyOnce && cfg.Reminder.Policy != ReminderPolicyDaily {
		return nil, errors.Errorf("unknown reminder policy: %s", cfg.Reminder.Policy)
	}

	return cfg, nil
}

// applyDefaults fills in the documented policy defaults for any section the
// yaml file leaves out.
func (cfg *Config) applyDefaults() {
	if cfg.TimeZone == "" {
		cfg.TimeZone = "America/Lima"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = 15 * time.Minute
	}

	if cfg.Tokens == nil {
		cfg.Tokens = &TokenConfig{}
	}
	if cfg.Tokens.ActivationTTL <= 0 {
		cfg.Tokens.ActivationTTL = 48 * time.Hour
	}
	if cfg.Tokens.PasswordResetTTL <= 0 {
		cfg.Tokens.PasswordResetTTL = 24 * time.Hour
	}
	if cfg.Tokens.DeepLinkTTL <= 0 {
		cfg.Tokens.DeepLinkTTL = 48 * time.Hour
	}
	if cfg.Tokens.MaxActivePerOwner <= 0 {
		cfg.Tokens.MaxActivePerOwner = 3
	}
	if cfg.Tokens.UsedRetention <= 0 {
		cfg.Tokens.UsedRetention = 7 * 24 * time.Hour
	}
	if cfg.Tokens.PurgeInterval <= 0 {
		cfg.Tokens.PurgeInterval = time.Hour
	}

	if cfg.AutoCancel == nil {
		cfg.AutoCancel = &AutoCancelConfig{Enabled: true}
	}
	if cfg.AutoCancel.LeadHours <= 0 {
		cfg.AutoCancel.LeadHours = 48
	}
	if cfg.AutoCancel.SweepInterval <= 0 {
		cfg.AutoCancel.SweepInterval = 15 * time.Minute
	}
	if cfg.AutoCancel.SoftTimeout <= 0 {
		cfg.AutoCancel.SoftTimeout = 5 * time.Minute
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if cfg.Reminder.WindowDays <= 0 {
		cfg.Reminder.WindowDays = 3
	}
	if cfg.Reminder.Policy == "" {
		cfg.Reminder.Policy = ReminderPolicyOnce
	}
	if cfg.Reminder.RunAt == "" {
		cfg.Reminder.RunAt = "08:00"
	}
	if cfg.Reminder.SoftTimeout <= 0 {
		cfg.Reminder.SoftTimeout = 10 * time.Minute
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = 30 * time.Second
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
