package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vortex-fintech/go-reqsign/frame"
	"github.com/vortex-fintech/go-reqsign/uriutil"
)

// EmptyPayloadHash is hex(sha256("")), the payload hash of a bodyless request.
const EmptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// Request assembles the canonical request: method, canonical URI,
// canonical query, canonical headers and the payload hash, joined by
// '\n'. The headers block keeps its own trailing '\n'. The method is
// taken verbatim; the path is percent-encoded byte-wise with '/' kept
// as-is and no dot-segment or double-slash normalization.
func Request(req *frame.Request) string {
	return strings.Join([]string{
		req.Method,
		URI(req.Path),
		Query(req.RawQuery),
		Headers(req.Headers),
		HashPayload(req.Body),
	}, "\n")
}

// URI encodes raw path bytes, leaving path separators alone.
func URI(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = uriutil.EncodeString(seg)
	}
	return strings.Join(segments, "/")
}

// HashPayload returns the lowercase hex SHA-256 digest of the body bytes.
func HashPayload(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
