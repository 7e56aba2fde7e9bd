package config

const (
	defaultLogDir              = "~/.local/share/subcheck/logs"
	defaultMarker              = "CR"
	defaultSimilarityThreshold = 95.0
	defaultRatioThreshold      = 80.0
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

func defaultKeywords() []string {
	return []string{"replay", "preview"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Reference: Reference{
			Marker:   defaultMarker,
			Keywords: defaultKeywords(),
		},
		Matching: Matching{
			SimilarityThreshold: defaultSimilarityThreshold,
		},
		Glossary: Glossary{
			RatioThreshold: defaultRatioThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
