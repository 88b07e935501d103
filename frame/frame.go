package frame

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRequestLine     = errors.New("malformed request line")
	ErrHeaderLine      = errors.New("malformed header line")
	ErrChunkedTransfer = errors.New("chunked transfer encoding is not supported")
)

// Header — одна сырая пара name/value в порядке появления.
// Регистр и дубликаты сохраняются до канонизации.
type Header struct {
	Name  string
	Value string
}

// Request is a parsed HTTP/1.1 request frame.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Proto    string
	Headers  []Header
	Body     []byte
}

// Parse splits a raw HTTP/1.1 frame into request line, headers and body.
// Both CRLF and bare LF line endings are accepted. The body is whatever
// follows the first blank line, verbatim; Content-Length is not enforced
// (callers only need the body bytes, not framing validation).
func Parse(raw []byte) (*Request, error) {
	// the body starts after the FIRST blank line, whichever terminator
	// style produced it; a later \r\n\r\n inside body bytes must not win
	// over an earlier bare-LF blank line
	head := raw
	var body []byte
	crlf := bytes.Index(raw, []byte("\r\n\r\n"))
	lf := bytes.Index(raw, []byte("\n\n"))
	switch {
	case crlf >= 0 && (lf < 0 || crlf < lf):
		head, body = raw[:crlf], raw[crlf+4:]
	case lf >= 0:
		head, body = raw[:lf], raw[lf+2:]
	}

	lines := splitLines(head)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrRequestLine)
	}

	req := &Request{Body: body}
	if err := parseRequestLine(lines[0], req); err != nil {
		return nil, err
	}

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, fmt.Errorf("%w: %q", ErrHeaderLine, line)
		}
		h := Header{Name: line[:colon], Value: line[colon+1:]}
		if isChunked(h) {
			return nil, fmt.Errorf("%w: %s: %s", ErrChunkedTransfer, h.Name, strings.TrimSpace(h.Value))
		}
		req.Headers = append(req.Headers, h)
	}
	return req, nil
}

// parseRequestLine expects exactly "METHOD SP TARGET SP VERSION".
// The target is split into path and query at the first '?'.
func parseRequestLine(line string, req *Request) error {
	parts := strings.Split(line, " ")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return fmt.Errorf("%w: %q", ErrRequestLine, line)
	}
	req.Method = parts[0]
	req.Proto = parts[2]

	target := parts[1]
	if q := strings.IndexByte(target, '?'); q >= 0 {
		req.Path, req.RawQuery = target[:q], target[q+1:]
	} else {
		req.Path = target
	}
	return nil
}

// isChunked reports whether the header declares a chunked transfer
// coding, alone or anywhere in a comma-separated coding list.
func isChunked(h Header) bool {
	if !strings.EqualFold(strings.TrimSpace(h.Name), "transfer-encoding") {
		return false
	}
	for _, coding := range strings.Split(h.Value, ",") {
		if strings.EqualFold(strings.TrimSpace(coding), "chunked") {
			return true
		}
	}
	return false
}

// splitLines tolerates CRLF and bare LF terminators.
func splitLines(head []byte) []string {
	s := strings.ReplaceAll(string(head), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
