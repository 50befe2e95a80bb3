package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv wraps godotenv.Load(); a missing .env file is not an error,
// matching the original CLI's tolerant startup.
func loadDotEnv() error {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
