// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable by the web
// front end.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration <= 0 || cfg.App.SessionIdleTimeout <= 0 {
		return fmt.Errorf("%w: session sign key, duration and idle timeout are required", ErrInvalidAppConfigs)
	}
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if err := cfg.Navigation.validate(); err != nil {
		return err
	}
	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	return cfg.Navigation.validate()
}

func (a App) validate() error {
	switch a.Locale {
	case LocaleJapanese, LocaleEnglish:
		return nil
	default:
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidAppConfigs, a.Locale)
	}
}

func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (n Navigation) validate() error {
	if n.DetailURL == "" || n.PDFURL == "" || n.CustomerURL == "" {
		return ErrInvalidNavigationConfigs
	}
	return nil
}
