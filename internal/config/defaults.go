package config

import "time"

const (
	LocaleJapanese = "ja"
	LocaleEnglish  = "en"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:             LocaleJapanese,
			SessionIssuer:      "maintenance-search",
			SessionDuration:    12 * time.Hour,
			SessionIdleTimeout: 30 * time.Minute,
			MaxSessions:        10000,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Navigation: Navigation{
			DetailURL:   "inspection.html",
			PDFURL:      "pdf-output.html",
			CustomerURL: "customer.html",
		},
		Workers: Workers{
			SessionSweepInterval: time.Minute,
		},
	}
}
