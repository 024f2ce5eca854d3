package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/adrg/xdg"
    toml "github.com/pelletier/go-toml/v2"
    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/goextract/internal/fetch"
)

// ConfigEnvVar names the environment variable pointing at a config file.
const ConfigEnvVar = "GOEXTRACT_CONFIG"

// AppName scopes the XDG config directory.
const AppName = "goextract"

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
    UserAgent      string   `yaml:"userAgent" json:"userAgent" toml:"userAgent"`
    Timeout        Duration `yaml:"timeout" json:"timeout" toml:"timeout"`
    Verbose        bool     `yaml:"verbose" json:"verbose" toml:"verbose"`
    StylesheetFile string   `yaml:"stylesheetFile" json:"stylesheetFile" toml:"stylesheetFile"`
}

// Duration accepts Go duration strings ("10s", "1m30s") in every config format.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
    s := strings.TrimSpace(string(b))
    if s == "" {
        *d = 0
        return nil
    }
    v, err := time.ParseDuration(s)
    if err != nil {
        return fmt.Errorf("invalid duration %q: %w", s, err)
    }
    *d = Duration(v)
    return nil
}

// LoadConfigFile reads YAML, JSON or TOML into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    case ".toml":
        if err := toml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse toml: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// FindConfigFile returns the config file named by GOEXTRACT_CONFIG, or the
// first goextract/config.{yaml,yml,json,toml} under the XDG config dirs.
// An empty path means no file is configured.
func FindConfigFile() string {
    if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
        return p
    }
    for _, name := range []string{"config.yaml", "config.yml", "config.json", "config.toml"} {
        if p, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
            return p
        }
    }
    return ""
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }
    if cfg.UserAgent == "" && fc.UserAgent != "" { cfg.UserAgent = fc.UserAgent }
    if cfg.Timeout == 0 && fc.Timeout > 0 { cfg.Timeout = time.Duration(fc.Timeout) }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
    if cfg.StylesheetFile == "" && fc.StylesheetFile != "" { cfg.StylesheetFile = fc.StylesheetFile }
}

// ApplyDefaults fills the fixed browser user agent and 10s timeout.
func ApplyDefaults(cfg *Config) {
    if cfg == nil { return }
    if cfg.UserAgent == "" { cfg.UserAgent = fetch.DefaultUserAgent }
    if cfg.Timeout == 0 { cfg.Timeout = fetch.DefaultTimeout }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.URL) == "" {
        return errors.New("config: url is required")
    }
    if cfg.Timeout < 0 {
        return errors.New("config: negative timeout is not allowed")
    }
    return nil
}

// LoadConfig resolves cfg against dotenv files, the config file and the
// environment. Precedence: explicit cfg fields, env, file, defaults.
func LoadConfig(cfg Config) (Config, error) {
    if err := LoadEnvFiles(".env"); err != nil {
        return cfg, fmt.Errorf("load .env: %w", err)
    }
    env := cfg
    ApplyEnvToConfig(&env)
    if path := FindConfigFile(); path != "" {
        fc, err := LoadConfigFile(path)
        if err != nil {
            return cfg, fmt.Errorf("config file %s: %w", path, err)
        }
        // An explicit VERBOSE, even "false", wins over the file.
        if _, ok := parseSwitch(os.Getenv("VERBOSE")); ok {
            fc.Verbose = false
        }
        ApplyFileConfig(&env, fc)
    }
    ApplyDefaults(&env)
    if err := ValidateConfig(env); err != nil {
        return cfg, err
    }
    return env, nil
}
