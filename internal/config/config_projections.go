package config

import "fmt"

// ClientConfig is the terminal front end view of [StructuredConfig]. It
// omits everything related to serving HTTP and sessions.
type ClientConfig struct {
	App        App
	Adapter    Adapter
	Navigation Navigation
}

// GetServerConfig loads the merged configuration and validates it for the
// web front end.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validate()
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: App{
			Locale:  cfg.App.Locale,
			Version: cfg.App.Version,
		},
		Adapter:    cfg.Adapter,
		Navigation: cfg.Navigation,
	}

	return clientCfg, clientCfg.validate()
}
