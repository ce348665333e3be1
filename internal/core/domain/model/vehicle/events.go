package vehicle

// Event type tags published on the vehicle-events topic. The routing key is
// always the vehicle's VIN.
const (
	EventCreated       = "VEHICLE_CREATED"
	EventUpdated       = "VEHICLE_UPDATED"
	EventDeleted       = "VEHICLE_DELETED"
	EventStatusChanged = "VEHICLE_STATUS_CHANGED"
)
