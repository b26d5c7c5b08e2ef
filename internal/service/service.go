// Package service implements the application logic between the HTTP
// API and the stores.
package service

import "github.com/readmateapp/readmate-server/internal/validation"

// validate is shared by all services for request struct validation.
var validate = validation.New()
