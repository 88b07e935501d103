package errors

import "google.golang.org/grpc/codes"

func InvalidArgument() ErrorResponse {
	return ErrorResponse{Code: codes.InvalidArgument, Message: "Invalid argument"}
}

func Unimplemented() ErrorResponse {
	return ErrorResponse{Code: codes.Unimplemented, Message: "Not implemented"}
}

func Internal() ErrorResponse {
	return ErrorResponse{Code: codes.Internal, Message: "Internal error"}
}

func ValidationError(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Code:       codes.InvalidArgument,
		Message:    "Validation failed",
		Details:    fields,
		Violations: ViolationsFromMap(fields),
	}
}

// FrameParse — некорректный HTTP-фрейм: не распарсили request line или заголовок.
func FrameParse(detail string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Request frame cannot be parsed",
		Details: map[string]string{"frame": detail},
	}.WithReason("frame_parse_failed")
}

// UnsupportedEncoding — фрейм объявил chunked transfer encoding.
// Такие фреймы отклоняются, а не обрабатываются молча.
func UnsupportedEncoding(detail string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.Unimplemented,
		Message: "Transfer encoding is not supported",
		Details: map[string]string{"transfer_encoding": detail},
	}.WithReason("unsupported_transfer_encoding")
}
