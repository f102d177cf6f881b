package config

const (
	defaultStateDir        = "~/.local/share/snapsort"
	defaultLogDir          = "~/.local/share/snapsort/logs"
	defaultHistoryDB       = "~/.local/share/snapsort/history.db"
	defaultFFprobeBinary   = "ffprobe"
	defaultFFprobeTimeout  = 30
	defaultPlausibleAfter  = "1990-01-01"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	plausibleAfterLayout   = "2006-01-02"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Library: Library{
			OverwriteExisting: false,
		},
		Metadata: Metadata{
			FFprobeBinary:  defaultFFprobeBinary,
			FFprobeTimeout: defaultFFprobeTimeout,
			PlausibleAfter: defaultPlausibleAfter,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
