package config

import "os"

// DevelopmentEnv reports whether the DEVELOPMENT env variable forces
// development mode regardless of the config file.
func DevelopmentEnv() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
