package models

// ListOptions is the query sent with a list request.
type ListOptions struct {
	// Limit caps the number of returned records.
	Limit int
	// Sort is the API sort expression, e.g. "-created_at".
	Sort string
}

// ListResponse is the envelope returned by the list endpoint.
type ListResponse struct {
	Data []Record `json:"data"`
}
