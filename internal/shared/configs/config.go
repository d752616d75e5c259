package configs

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MetricsConfig holds the metrics endpoint and instrumentation configuration.
type MetricsConfig struct {
	// EndpointPrefix is the path, as segments, under which metrics are served.
	EndpointPrefix     []string  `mapstructure:"endpoint_prefix" validate:"required,min=1,dive,required,excludes=/"`
	InstrumentApp      bool      `mapstructure:"instrument_app"`
	InstrumentEndpoint bool      `mapstructure:"instrument_endpoint"`
	RuntimeCollectors  bool      `mapstructure:"runtime_collectors"`
	Buckets            []float64 `mapstructure:"buckets"` // seconds, strictly increasing; empty means defaults
}
