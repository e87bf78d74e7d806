package catalogservice

// Service is a salon service from the catalog: the booking engine reads
// its duration and price, denormalizing both into created reserves.
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
}

// ErrorResponse is the error payload of the catalog service.
type ErrorResponse struct {
	Error string `json:"error"`
}
