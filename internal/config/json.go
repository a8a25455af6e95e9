package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Locale             string   `json:"locale"`
		Version            string   `json:"version"`
		SessionSignKey     string   `json:"session_sign_key"`
		SessionIssuer      string   `json:"session_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		SessionIdleTimeout Duration `json:"session_idle_timeout"`
		MaxSessions        int      `json:"max_sessions"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Navigation struct {
		DetailURL   string `json:"detail_url"`
		PDFURL      string `json:"pdf_url"`
		CustomerURL string `json:"customer_url"`
	} `json:"navigation,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Locale:             jsonCfg.App.Locale,
			Version:            jsonCfg.App.Version,
			SessionSignKey:     jsonCfg.App.SessionSignKey,
			SessionIssuer:      jsonCfg.App.SessionIssuer,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			SessionIdleTimeout: time.Duration(jsonCfg.App.SessionIdleTimeout),
			MaxSessions:        jsonCfg.App.MaxSessions,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Navigation: Navigation{
			DetailURL:   jsonCfg.Navigation.DetailURL,
			PDFURL:      jsonCfg.Navigation.PDFURL,
			CustomerURL: jsonCfg.Navigation.CustomerURL,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
