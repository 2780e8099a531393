package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createJobRequest struct {
	JobID      string    `json:"jobId"      validate:"required"`
	Customer   string    `json:"customer"   validate:"required"`
	Quantity   int       `json:"quantity"   validate:"required,gt=0"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Supervisor string    `json:"supervisor"`
}

// updateJobRequest is a partial update: absent fields leave the document
// untouched, which is what makes repeated PUTs of the same body converge.
type updateJobRequest struct {
	Status     *string `json:"status"     validate:"omitempty,oneof='In Process' Done"`
	Defect     *string `json:"defect"`
	Supervisor *string `json:"supervisor"`
}
