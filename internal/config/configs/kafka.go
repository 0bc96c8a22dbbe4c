package configs

// Kafka configures the event bus. When Driver is "memory" the postback
// envelopes are handed to the workflow engine in-process and the broker
// settings are ignored.
type Kafka struct {
	Driver  string   `env:"DRIVER" envDefault:"kafka"`
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"smart-link.postback.received"`
	GroupID string   `env:"GROUP_ID" envDefault:"attribution-workflow"`
}

// UseMemory reports whether the in-process bus was requested.
func (c Kafka) UseMemory() bool {
	return c.Driver == "memory"
}
