package config

const (
	envPort          = "PORT"
	envDataFile      = "DATA_FILE"
	envStoreBackend  = "STORE_BACKEND"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envRedisKey      = "REDIS_KEY"
	envAMQPURL       = "EVENTS_AMQP_URL"
	envAMQPQueue     = "EVENTS_QUEUE"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envTracingOn     = "TRACING_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envEnvFile       = "ENV_FILE"

	defaultPort         = "5000"
	defaultDataFile     = "data/data.json"
	defaultStoreBackend = BackendFile
	defaultRedisAddr    = "localhost:6379"
	defaultRedisKey     = "hotel:snapshot"
	defaultAMQPQueue    = "reservations.events"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "travel-reservations"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultEnvFile      = ".env"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
