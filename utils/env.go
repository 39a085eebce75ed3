package utils

import "os"

// IsProduction reports whether the server runs with ENV=production.
// Read from the environment directly so the logger can come up before
// the config package has loaded.
func IsProduction() bool {
	return os.Getenv("ENV") == "production"
}
