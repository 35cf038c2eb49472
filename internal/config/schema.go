package config

// Source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Source  SourceConfig  `yaml:"source"`
	Reports ReportsConfig `yaml:"reports"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SourceConfig struct {
	// Kind selects where report batches come from: "file" or "postgres".
	Kind string `yaml:"kind"`

	// Datasets maps dataset names to JSON file paths (file kind only).
	Datasets map[string]string `yaml:"datasets"`
}

// ReportsConfig holds the default query options; requests may override each
// one per call.
type ReportsConfig struct {
	GroupBy       string `yaml:"group_by"`        // country_name / payment_name
	RateMode      string `yaml:"rate_mode"`       // strict / combined
	MinSampleSize int    `yaml:"min_sample_size"` // >= 1
	TopN          int    `yaml:"top_n"`           // 0 = no truncation
}
