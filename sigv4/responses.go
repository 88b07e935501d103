package sigv4

import (
	"errors"

	errs "github.com/vortex-fintech/go-reqsign/errors"
	"github.com/vortex-fintech/go-reqsign/frame"
)

// Classify maps a Sign error onto the shared ErrorResponse model, for
// callers that surface signing failures over gRPC or HTTP.
func Classify(err error) errs.ErrorResponse {
	var e errs.ErrorResponse
	switch {
	case err == nil:
		return errs.ErrorResponse{}
	case errors.As(err, &e):
		return e
	case errors.Is(err, frame.ErrChunkedTransfer):
		return errs.UnsupportedEncoding("chunked")
	case errors.Is(err, frame.ErrRequestLine), errors.Is(err, frame.ErrHeaderLine):
		return errs.FrameParse(err.Error())
	default:
		return errs.Internal().WithReason("internal")
	}
}

func failureReason(err error) string {
	return string(Classify(err).Reason)
}
