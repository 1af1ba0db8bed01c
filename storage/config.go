package storage

// Config controls how the BadgerDB-backed persona store is opened.
type Config struct {
	DataDir        string
	DisableLogging bool
	InMemory       bool
	SyncWrites     bool
	GCInterval     int64 // In seconds, 0 to disable
}

// DefaultConfig returns the settings used by the server binary.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		DisableLogging: true,
		InMemory:       false,
		SyncWrites:     true,
		GCInterval:     3600, // 1 hour
	}
}
