package config

import "time"

const (
	// Database drivers.
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// Storage backends.
	StorageLocal = "local"
	StorageS3    = "s3"
	StorageGCS   = "gcs"

	// Database defaults.
	DefaultPostgresPort = 5432

	// Connection pool defaults.
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 5
	DefaultMaxConnIdleTime = 30 * time.Minute

	// Messaging defaults.
	DefaultMaxReconnect  = 10
	DefaultReconnectWait = 2 * time.Second
	DefaultAckWait       = 30 * time.Second
	DefaultMaxDeliver    = 5
)
