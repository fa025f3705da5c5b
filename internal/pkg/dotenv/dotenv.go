// Package dotenv loads the process environment from a .env file and
// applies command-line overrides before the config is read.
package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the environment. A -port flag, when given, wins
// over the PORT variable from the file.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP listen port (overrides PORT from .env)")
	flag.Parse()

	if portFlag == "" {
		return nil
	}
	if err := os.Setenv("PORT", portFlag); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}

	return nil
}
