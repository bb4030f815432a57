package kafka

const (
	// TopicSearchPerformed is produced by the search API after every answered search.
	TopicSearchPerformed = "pharma.search.performed"
	// GroupIDSearchPerformed is the default consumer group of the analytics recorder.
	GroupIDSearchPerformed = "pharma-search-analytics"
)
