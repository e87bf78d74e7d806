package usersservice

// Customer is the customer record exposed by the users service.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Hairdresser is the hairdresser record exposed by the users service.
type Hairdresser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Rating string `json:"rating"`
}

// ErrorResponse is the error payload of the users service.
type ErrorResponse struct {
	Error string `json:"error"`
}
