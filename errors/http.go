package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// HTTPStatus — маппинг gRPC codes → HTTP.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Internal:
		return http.StatusInternalServerError
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ToHTTP — пишет JSON-тело совместимое с ErrorResponse.
func (e ErrorResponse) ToHTTP(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(HTTPStatus(e.Code))
	_, _ = w.Write([]byte(e.ToString()))
}
