package main

import (
	"errors"
	"io"

	sonic "github.com/bytedance/sonic"

	"github.com/gdogra/tennisconnect/internal/usecase"
)

const (
	responseAPIVersion = "1.0"
	errorDomain        = "tennisconnect"
)

type responseEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data,omitempty"`
	Error      *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type mappedError struct {
	ExitCode int
	Reason   string
	Status   string
}

// reportedError marks an error whose envelope is already on stdout.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func writeJSON(w io.Writer, payload any) {
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w io.Writer, data any) {
	writeJSON(w, responseEnvelope{
		APIVersion: responseAPIVersion,
		Data:       data,
	})
}

func writeError(w io.Writer, err error) {
	mapped := mapError(err)
	writeJSON(w, responseEnvelope{
		APIVersion: responseAPIVersion,
		Error: &errorResponse{
			Code:    mapped.ExitCode,
			Domain:  errorDomain,
			Reason:  mapped.Reason,
			Status:  mapped.Status,
			Message: err.Error(),
		},
	})
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return mapError(err).ExitCode
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{ExitCode: 2, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{ExitCode: 3, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{ExitCode: 4, Reason: "forbidden", Status: "PERMISSION_DENIED"}
	case errors.Is(err, usecase.ErrInvalidState):
		return mappedError{ExitCode: 5, Reason: "invalidState", Status: "FAILED_PRECONDITION"}
	case usecase.IsStoreFailure(err):
		return mappedError{ExitCode: 6, Reason: "storeFailure", Status: "UNAVAILABLE"}
	default:
		return mappedError{ExitCode: 1, Reason: "internalError", Status: "INTERNAL"}
	}
}
