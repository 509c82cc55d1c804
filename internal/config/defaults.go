package config

const (
	defaultLogDir          = "~/.local/share/slate/logs"
	defaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	defaultTMDBLanguage    = "en-US"
	defaultTMDBRateLimitMS = 250
	defaultBatchDelayMS    = 300
	defaultBatchMaxRetries = 2
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:     defaultTMDBBaseURL,
			Language:    defaultTMDBLanguage,
			RateLimitMS: defaultTMDBRateLimitMS,
		},
		Batch: Batch{
			DelayMS:    defaultBatchDelayMS,
			MaxRetries: defaultBatchMaxRetries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
