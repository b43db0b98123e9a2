// Package main provides the entry point for the AI HR console, the
// command-line client for the candidate interview wizard and the admin
// dashboard of the AI HR backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/backend"
	"github.com/otabek/hr-console/internal/config"
	"github.com/otabek/hr-console/internal/i18n"
)

var (
	flagBackendURL string
	flagLang       string
)

var rootCmd = &cobra.Command{
	Use:   "hr_console",
	Short: "AI HR interview console",
	Long:  "AI HR console drives candidate interviews and the hiring dashboard against the AI HR backend REST API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", "", "Backend base URL (overrides BACKEND_URL env var)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Interface language: en, ru or uz (remembered between runs)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the backend client from the flag or environment.
func newClient() *backend.Client {
	url := flagBackendURL
	if url == "" {
		url = config.BackendURL()
	}
	return backend.New(url)
}

// consoleLocale resolves the interface locale: an explicit --lang wins and is
// remembered, then the stored preference, then the environment language,
// then English.
func consoleLocale() i18n.Locale {
	if i18n.Supported(flagLang) {
		// Best effort, like the browser's localStorage write.
		_ = config.SavePreferences(config.Preferences{Locale: flagLang})
		return i18n.Locale(flagLang)
	}
	prefs := config.LoadPreferences()
	return i18n.Parse(prefs.Locale)
}
