package constants

import (
	"os"
	"time"
)

func getenv(name, fallback string) string {
	value := os.Getenv(name)
	if value != "" {
		return value
	}
	return fallback
}

func GetListenAddr() string {
	return getenv("LISTEN_ADDR", ":8080")
}

// GetDynamoEndpoint is empty unless scales should be kept in DynamoDB, e.g.
// http://localhost:8000 for DynamoDB Local.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoRegion() string {
	return getenv("DYNAMO_REGION", "localhost")
}

func GetScaleTable() string {
	return getenv("SCALE_TABLE", "tonality-scales")
}

// GetSentryDSN is empty when Sentry is off.
func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

// GetSessionTTL is how long an engraving session may sit idle. Unparsable
// values fall back to the default.
func GetSessionTTL() time.Duration {
	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "10m"))
	if err != nil || ttl <= 0 {
		return DefaultSessionTTL
	}
	return ttl
}

const DefaultSessionTTL = 10 * time.Minute
