package production

// Event type tags published on the production-events topic. The routing key
// is always the production order number. Deletion intentionally publishes
// nothing.
const (
	EventCreated      = "PRODUCTION_ORDER_CREATED"
	EventUpdated      = "PRODUCTION_ORDER_UPDATED"
	EventStageChanged = "PRODUCTION_STAGE_CHANGED"
)
