package repository

import (
	"os"
	"strconv"
	"time"
)

// Stored timestamps keep all nine fraction digits so the strings are fixed
// width and compare lexicographically in chronological order. Plain
// RFC3339Nano trims trailing zeros, which breaks that ('.' sorts before 'Z').
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func timeToString(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
