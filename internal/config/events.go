package config

// EventsConfig controls reservation event publishing. An empty AMQPURL
// falls back to logging events.
type EventsConfig struct {
	AMQPURL string
	Queue   string
}

func loadEvents() EventsConfig {
	return EventsConfig{
		AMQPURL: envOrDefault(envAMQPURL, ""),
		Queue:   envOrDefault(envAMQPQueue, defaultAMQPQueue),
	}
}
