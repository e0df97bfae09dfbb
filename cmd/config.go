package cmd

// Config carries every runtime setting the application reads at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DispatchJobEnabled toggles the background job that pairs pending
	// orders with free partners.
	DispatchJobEnabled bool

	// HeartbeatMarksOnDuty controls whether a location report from a busy
	// partner puts them back on the available roster.
	HeartbeatMarksOnDuty bool
}
