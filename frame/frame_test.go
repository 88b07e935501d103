package frame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-reqsign/frame"
)

func TestParse_RequestLine(t *testing.T) {
	req, err := frame.Parse([]byte("GET /resource?test=true HTTP/1.1\r\nHost: test.com\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/resource", req.Path)
	assert.Equal(t, "test=true", req.RawQuery)
	assert.Equal(t, "HTTP/1.1", req.Proto)
	require.Len(t, req.Headers, 1)
	assert.Equal(t, "Host", req.Headers[0].Name)
	assert.Equal(t, " test.com", req.Headers[0].Value)
	assert.Empty(t, req.Body)
}

func TestParse_NoQuery(t *testing.T) {
	req, err := frame.Parse([]byte("GET /resource HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "/resource", req.Path)
	assert.Equal(t, "", req.RawQuery)
}

func TestParse_BareLFTerminators(t *testing.T) {
	req, err := frame.Parse([]byte("POST /x HTTP/1.1\nHost: a\nX-One: 1\n\nhello"))
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	require.Len(t, req.Headers, 2)
	assert.Equal(t, []byte("hello"), req.Body)
}

func TestParse_HeaderValueKeepsColons(t *testing.T) {
	req, err := frame.Parse([]byte("GET / HTTP/1.1\r\nTimestamp: 2023-08-03T10:24:03.012Z\r\n\r\n"))
	require.NoError(t, err)
	require.Len(t, req.Headers, 1)
	assert.Equal(t, "Timestamp", req.Headers[0].Name)
	assert.Equal(t, " 2023-08-03T10:24:03.012Z", req.Headers[0].Value)
}

func TestParse_DuplicateHeadersPreserved(t *testing.T) {
	req, err := frame.Parse([]byte("GET / HTTP/1.1\r\nChoice: A\r\nChoice: B\r\nChoice: C\r\n\r\n"))
	require.NoError(t, err)
	require.Len(t, req.Headers, 3)
	assert.Equal(t, " B", req.Headers[1].Value)
}

func TestParse_BodyVerbatim(t *testing.T) {
	req, err := frame.Parse([]byte("POST /submit HTTP/1.1\r\nHost: x\r\nContent-Length: 11\r\n\r\nparam=value"))
	require.NoError(t, err)
	assert.Equal(t, []byte("param=value"), req.Body)
}

func TestParse_BareLFHeadBodyWithCRLFBytes(t *testing.T) {
	// blank line is bare-LF; the CRLF pair deeper in the body must not
	// be mistaken for the head/body boundary
	req, err := frame.Parse([]byte("GET / HTTP/1.1\nHost: a\n\nbody\r\n\r\nmore"))
	require.NoError(t, err)
	require.Len(t, req.Headers, 1)
	assert.Equal(t, []byte("body\r\n\r\nmore"), req.Body)
}

func TestParse_BodyMayContainBlankLines(t *testing.T) {
	req, err := frame.Parse([]byte("POST / HTTP/1.1\r\nHost: x\r\n\r\nline1\r\n\r\nline2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("line1\r\n\r\nline2"), req.Body)
}

func TestParse_MalformedRequestLine(t *testing.T) {
	for _, raw := range []string{
		"",
		"GET /only-two-tokens\r\n\r\n",
		"GET  /double-space HTTP/1.1\r\n\r\n",
		"GET /x HTTP/1.1 extra\r\n\r\n",
	} {
		_, err := frame.Parse([]byte(raw))
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, errors.Is(err, frame.ErrRequestLine), "raw=%q err=%v", raw, err)
	}
}

func TestParse_HeaderWithoutColon(t *testing.T) {
	_, err := frame.Parse([]byte("GET / HTTP/1.1\r\nBadHeader\r\n\r\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, frame.ErrHeaderLine))
}

func TestParse_ChunkedRejected(t *testing.T) {
	for _, raw := range []string{
		"POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n",
		"POST / HTTP/1.1\r\ntransfer-encoding: CHUNKED\r\n\r\n",
		"POST / HTTP/1.1\r\nTRANSFER-ENCODING:chunked\r\n\r\n",
		"POST / HTTP/1.1\r\nTransfer-Encoding: gzip, chunked\r\n\r\n",
		"POST / HTTP/1.1\r\nTransfer-Encoding: chunked , gzip\r\n\r\n",
	} {
		_, err := frame.Parse([]byte(raw))
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, errors.Is(err, frame.ErrChunkedTransfer), "raw=%q err=%v", raw, err)
	}
}

func TestParse_OtherTransferEncodingsPass(t *testing.T) {
	req, err := frame.Parse([]byte("POST / HTTP/1.1\r\nTransfer-Encoding: gzip\r\n\r\n"))
	require.NoError(t, err)
	require.Len(t, req.Headers, 1)

	// список без chunked тоже проходит
	req, err = frame.Parse([]byte("POST / HTTP/1.1\r\nTransfer-Encoding: gzip, identity\r\n\r\n"))
	require.NoError(t, err)
	require.Len(t, req.Headers, 1)
}
