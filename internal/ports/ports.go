package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// AI
	CompletionService CompletionService

	// Storage
	HistoryStore KeyValueStore
	ResultCache  ResultCache

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
