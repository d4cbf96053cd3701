package handlers

// HandlerBundle aggregates the HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Users    *UserHandler
	Services *ServiceHandler
	Bookings *BookingHandler
	Admin    *AdminHandler
	Storage  *StorageHandler
}
