package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the ELDSEED_* environment variables as a
// map. Config overrides and the MongoDB connection settings are read from it.
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		if strings.HasPrefix(pair[0], "ELDSEED_") {
			environmentVariables[pair[0]] = pair[1]
		}
	}

	return environmentVariables
}
