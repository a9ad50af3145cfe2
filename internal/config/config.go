package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	RoutingAWS          = "aws"
	RoutingStraightLine = "straight_line"
)

// Config holds all configuration values. It is loaded once at startup and
// shared read-only.
type Config struct {
	Port          string
	StorageDriver string

	// DynamoDB
	AWSRegion            string
	DynamoDBEndpoint     string
	TechniciansTable     string
	ScheduleEntriesTable string
	SuggestionsTable     string
	LocationHistoryTable string
	JobsTable            string

	// JobsSeedFile is a YAML job list loaded into the in-memory catalog.
	JobsSeedFile string

	JWTSecret string

	// Routing
	RoutingProvider     string
	RouteCalculatorName string
	RoutingTimeout      time.Duration
	RoutingMaxRetries   int
	AverageSpeedKmh     float64
	RoadDistanceFactor  float64

	// Dispatch
	OptimizerMaxIterations   int
	AssignMaxRetries         int
	SuggestionTTL            time.Duration
	SweepInterval            time.Duration
	SweepBatchSize           int
	LocationHistoryRetention time.Duration
	AvailabilityAutoApprove  bool
	AutoAssignMinScore       int
	ScoringWeightsFile       string

	// Logging
	LogFile              string
	LogLevel             slog.Level
	SlowRequestThreshold time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDynamoDB)),

		AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:     getEnv("DYNAMODB_ENDPOINT", ""),
		TechniciansTable:     getEnv("TECHNICIANS_TABLE", "technicians"),
		ScheduleEntriesTable: getEnv("SCHEDULE_ENTRIES_TABLE", "schedule_entries"),
		SuggestionsTable:     getEnv("SUGGESTIONS_TABLE", "dispatch_suggestions"),
		LocationHistoryTable: getEnv("LOCATION_HISTORY_TABLE", "technician_location_history"),
		JobsTable:            getEnv("JOBS_TABLE", "jobs"),

		JobsSeedFile: getEnv("JOBS_SEED_FILE", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RoutingProvider:     strings.ToLower(getEnv("ROUTING_PROVIDER", RoutingStraightLine)),
		RouteCalculatorName: getEnv("ROUTE_CALCULATOR_NAME", "dispatch-routes"),
		RoutingTimeout:      getDuration("ROUTING_TIMEOUT", 3*time.Second),
		RoutingMaxRetries:   getInt("ROUTING_MAX_RETRIES", 2),
		AverageSpeedKmh:     getFloat("AVERAGE_SPEED_KMH", 40),
		RoadDistanceFactor:  getFloat("ROAD_DISTANCE_FACTOR", 1.3),

		OptimizerMaxIterations:   getInt("OPTIMIZER_MAX_ITERATIONS", 1000),
		AssignMaxRetries:         getInt("ASSIGN_MAX_RETRIES", 3),
		SuggestionTTL:            getDuration("SUGGESTION_TTL", 30*time.Minute),
		SweepInterval:            getDuration("SWEEP_INTERVAL", time.Minute),
		SweepBatchSize:           getInt("SWEEP_BATCH_SIZE", 100),
		LocationHistoryRetention: getDuration("LOCATION_HISTORY_RETENTION", 7*24*time.Hour),
		AvailabilityAutoApprove:  getBool("AVAILABILITY_AUTO_APPROVE", true),
		AutoAssignMinScore:       getInt("AUTO_ASSIGN_MIN_SCORE", 90),
		ScoringWeightsFile:       getEnv("SCORING_WEIGHTS_FILE", ""),

		LogFile:              getEnv("LOG_FILE", "/tmp/dispatch-service.log"),
		LogLevel:             parseLogLevel(getEnv("LOG_LEVEL", "INFO")),
		SlowRequestThreshold: getDuration("SLOW_REQUEST_THRESHOLD", 500*time.Millisecond),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	v, err := cast.ToIntE(os.Getenv(key))
	if err != nil || os.Getenv(key) == "" {
		return defaultVal
	}
	return v
}

func getFloat(key string, defaultVal float64) float64 {
	v, err := cast.ToFloat64E(os.Getenv(key))
	if err != nil || os.Getenv(key) == "" {
		return defaultVal
	}
	return v
}

func getBool(key string, defaultVal bool) bool {
	v, err := cast.ToBoolE(os.Getenv(key))
	if err != nil || os.Getenv(key) == "" {
		return defaultVal
	}
	return v
}

// getDuration accepts Go duration strings ("30m"); a bare number is seconds.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	if secs, err := cast.ToFloat64E(raw); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	d, err := cast.ToDurationE(raw)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
