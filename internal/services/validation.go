package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1_048_576 // 1 MB

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int    `json:"status" example:"200"`
	Message string `json:"message" example:"Deposit successful"`
	Data    any    `json:"data"`
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &ValidationHelper{validator: v}
}

// ValidateStruct validates s and converts failures into a Validation error
// carrying one entry per offending field.
func (vh *ValidationHelper) ValidateStruct(s any) error {
	err := vh.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fmt.Sprintf("Field validation failed on '%s' tag", fe.Tag())
	}
	return &DomainError{Kind: ErrValidation, Message: "Validation failed", Details: details}
}

// DecodeJSON reads exactly one JSON object of at most 1 MB into dst,
// rejecting unknown fields, then validates it.
func (vh *ValidationHelper) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		log.Printf("[REQUEST] Invalid body on %s %s: %v", r.Method, r.URL.Path, err)
		return ValidationError("Invalid request body")
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ValidationError("Request body must only contain a single JSON object")
	}

	return vh.ValidateStruct(dst)
}

// SendResponse writes data wrapped in the response envelope.
func SendResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(Response{Status: statusCode, Message: message, Data: data}); err != nil {
		log.Printf("[RESPONSE] Failed to encode response: %v", err)
	}
}

// SendErrorResponse writes an error envelope. Validation details, when
// present, are placed in data.
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, err error) {
	var data any
	var domainErr *DomainError
	if errors.As(err, &domainErr) && len(domainErr.Details) > 0 {
		data = domainErr.Details
	}
	SendResponse(w, statusCode, message, data)
}
