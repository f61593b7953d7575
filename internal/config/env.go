package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFile loads the first of .env and .env.local that exists.
// Variables already present in the process environment win.
func loadEnvFile() error {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return err
		}
		slog.Debug("Loaded environment variables", slog.String("file", envPath))
		return nil
	}
	return errors.New("no .env file found")
}
