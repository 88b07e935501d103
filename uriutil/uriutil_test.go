package uriutil_test

import (
	"bytes"
	"testing"

	"github.com/vortex-fintech/go-reqsign/uriutil"
)

func TestEncode_UnreservedVerbatim(t *testing.T) {
	in := "ABCXYZabcxyz0189-._~"
	if got := uriutil.EncodeString(in); got != in {
		t.Fatalf("unreserved bytes must pass through: got %s", got)
	}
}

func TestEncode_ReservedBytes(t *testing.T) {
	cases := map[string]string{
		" ":           "%20",
		"+":           "%2B",
		",":           "%2C",
		"/":           "%2F",
		"%":           "%25",
		"a b":         "a%20b",
		"key=value&x": "key%3Dvalue%26x",
	}
	for in, want := range cases {
		if got := uriutil.EncodeString(in); got != want {
			t.Fatalf("Encode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncode_UTF8ByteWise(t *testing.T) {
	// U+00B1 (±) is 0xC2 0xB1 in UTF-8: two triples, not one.
	if got := uriutil.EncodeString("1±1"); got != "1%C2%B11" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeTolerant_PlusIsSpace(t *testing.T) {
	if got := uriutil.DecodeTolerant("all+please"); !bytes.Equal(got, []byte("all please")) {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeTolerant_ValidEscapes(t *testing.T) {
	if got := uriutil.DecodeTolerant("%41%62%2c"); !bytes.Equal(got, []byte("Ab,")) {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeTolerant_InvalidEscapesAreLiteral(t *testing.T) {
	cases := map[string]string{
		"%2TRUE%": "%2TRUE%",
		"%":       "%",
		"%zz":     "%zz",
		"%1":      "%1",
		"100%":    "100%",
	}
	for in, want := range cases {
		if got := uriutil.DecodeTolerant(in); !bytes.Equal(got, []byte(want)) {
			t.Fatalf("DecodeTolerant(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMalformedEscapeNormalization(t *testing.T) {
	// decode leaves the broken escapes untouched, re-encode escapes the '%'s
	got := uriutil.Encode(uriutil.DecodeTolerant("%2TRUE%"))
	if got != "%252TRUE%25" {
		t.Fatalf("got %q, want %%252TRUE%%25", got)
	}
}

func TestRoundTripIdempotence(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("plain"),
		[]byte("a b+c/d%e"),
		[]byte("1±1 и немного utf-8"),
		{0x00, 0xFF, 0x7F, 0x20, 0x2B},
	}
	for _, in := range inputs {
		once := uriutil.Encode(in)
		again := uriutil.Encode(uriutil.DecodeTolerant(once))
		if once != again {
			t.Fatalf("round trip not idempotent for %q: %q vs %q", in, once, again)
		}
	}
}
