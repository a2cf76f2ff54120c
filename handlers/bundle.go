package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Admin        *AdminHandler
}
