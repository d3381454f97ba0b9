package handlers

// HandlerBundle groups the handlers for route registration.
type HandlerBundle struct {
	Verification *VerificationHandler
	Equipment    *EquipmentHandler
	Dashboard    *DashboardHandler
}
