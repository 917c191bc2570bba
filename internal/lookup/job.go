package lookup

// Job is a lookup request carried over a message queue. CustomerID is the raw
// input text, parsed exactly as if it had been typed into the form.
type Job struct {
	CustomerID string `json:"customer_id"`
}
