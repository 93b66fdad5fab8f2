package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envTypes interface {
	string | int | bool
}

// GetEnv reads the environment variable envVar, falling back to defaultValue
// when it is unset or empty.
func GetEnv[T envTypes](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

// GetRequiredEnv exits the process when the environment variable is missing.
func GetRequiredEnv[T envTypes](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[T](envVar, envValue)
}

func parseEnv[T envTypes](envVar, envValue string) T {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: '%s' is not an integer", envVar, envValue))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: '%s' cannot be converted to bool", envVar, envValue))
		}
		*ptr = boolValue
	}
	return value
}
