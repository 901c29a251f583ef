package demo

import "time"

// DataResponse represents the mock business metrics payload.
type DataResponse struct {
	// Customers is a uniform draw from [100, 1000]
	Customers int `json:"customers"`

	// Sales is a uniform draw from [50, 500]
	Sales int `json:"sales"`

	// Profit is a uniform draw from [1000, 10000]
	Profit int `json:"profit"`

	// Timestamp is when the payload was generated
	Timestamp time.Time `json:"timestamp"`
}

// SlowResponse represents the payload of the deliberately slow endpoint.
type SlowResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse is the body for endpoints that return only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
