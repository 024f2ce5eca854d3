package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// URL of the page to extract. Required.
	URL string
	// OutputPath overrides the file name derived from the page title.
	OutputPath string

	// Fetch
	UserAgent string
	Timeout   time.Duration

	// StylesheetFile replaces the embedded stylesheet when set.
	StylesheetFile string

	Verbose bool
}
