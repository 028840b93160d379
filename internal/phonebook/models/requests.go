package models

import (
	"strconv"
	"strings"

	dErrors "phonebookd/pkg/domain-errors"
)

// InsertFdnRequest is the body of POST /fdn.
type InsertFdnRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	PIN2   string `json:"pin2"`
}

// Normalize trims surrounding whitespace from the number and PIN2.
func (r *InsertFdnRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	r.PIN2 = strings.TrimSpace(r.PIN2)
}

// UpdateFdnRequest is the body of PUT /fdn/{index}.
type UpdateFdnRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	PIN2   string `json:"pin2"`
}

func (r *UpdateFdnRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
	r.PIN2 = strings.TrimSpace(r.PIN2)
}

// DeleteFdnRequest is the body of DELETE /fdn/{index}.
type DeleteFdnRequest struct {
	PIN2 string `json:"pin2"`
}

func (r *DeleteFdnRequest) Normalize() {
	r.PIN2 = strings.TrimSpace(r.PIN2)
}

// ParseIndex validates a record index path parameter.
func ParseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, dErrors.New(dErrors.CodeBadRequest, "index is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "index must be a positive integer")
	}
	return n, nil
}

// AttachModemRequest is the body of POST /modems. It creates the phonebook
// instance of a modem using the named driver.
type AttachModemRequest struct {
	ID     string `json:"id"`
	Vendor string `json:"vendor"`
	Model  string `json:"model"`
	Driver string `json:"driver"`
}

func (r *AttachModemRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Vendor = strings.TrimSpace(r.Vendor)
	r.Model = strings.TrimSpace(r.Model)
	r.Driver = strings.TrimSpace(r.Driver)
}

// Validate checks the fields needed to probe a driver.
func (r *AttachModemRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if r.Driver == "" {
		return dErrors.New(dErrors.CodeValidation, "driver is required")
	}
	return nil
}
