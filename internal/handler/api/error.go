package api

import (
	"net/http"

	"puntoenvio-gateway/internal/handler/httperr"
)

func internalError() httperr.Response {
	return httperr.Response{
		Status:  http.StatusInternalServerError,
		Error:   "InternalError",
		Message: "Internal server error",
	}
}

func badRequest(msg string) httperr.Response {
	return httperr.Response{
		Status:  http.StatusBadRequest,
		Error:   "ValidationError",
		Message: msg,
	}
}

func missingFields(required []string) httperr.Response {
	return httperr.Response{
		Status:   http.StatusBadRequest,
		Error:    "ValidationError",
		Message:  "Missing required fields",
		Required: required,
	}
}
