package helper

import (
	"os"
	"strconv"
)

func GetenvStr(key string, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func GetenvInt(key string, defaultValue int) int {
	s := GetenvStr(key, "")
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return v
}

func GetenvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(GetenvStr(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func GetenvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(GetenvStr(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}
