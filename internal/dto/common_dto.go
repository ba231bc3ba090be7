package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries one message per violating field.
type ValidationErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// CreateResponse is the body of every successful write: the identifier of
// the affected record. For progress upserts the caller cannot tell from it
// whether a record was created or updated.
type CreateResponse struct {
	ID string `json:"id"`
}

type HealthResponse struct {
	Status      string   `json:"status"`
	Timestamp   string   `json:"timestamp"`
	DB          string   `json:"db"`
	Database    string   `json:"database_name,omitempty"`
	Collections []string `json:"collections,omitempty"`
}
