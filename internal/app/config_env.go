package app

import (
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog/log"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.UserAgent == "" {
        cfg.UserAgent = strings.TrimSpace(os.Getenv("GOEXTRACT_USER_AGENT"))
    }
    if cfg.StylesheetFile == "" {
        cfg.StylesheetFile = strings.TrimSpace(os.Getenv("GOEXTRACT_STYLESHEET"))
    }

    if cfg.Timeout == 0 {
        if s := strings.TrimSpace(os.Getenv("GOEXTRACT_TIMEOUT")); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.Timeout = d
            } else {
                log.Warn().Str("value", s).Msg("ignoring invalid GOEXTRACT_TIMEOUT")
            }
        }
    }

    if !cfg.Verbose {
        s := os.Getenv("VERBOSE")
        if v, ok := parseSwitch(s); ok {
            cfg.Verbose = v
        } else if strings.TrimSpace(s) != "" {
            log.Warn().Str("value", s).Msg("ignoring invalid VERBOSE")
        }
    }
}

// parseSwitch reads an on/off environment value. ok is false when s is empty
// or not recognized.
func parseSwitch(s string) (v bool, ok bool) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "1", "true", "yes", "on":
        return true, true
    case "0", "false", "no", "off":
        return false, true
    }
    return false, false
}
