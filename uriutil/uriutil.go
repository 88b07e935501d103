package uriutil

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes every byte outside the unreserved set
// (A-Z a-z 0-9 - . _ ~). Encoding is byte-wise: multi-byte UTF-8
// sequences come out as one %XX triple per byte.
func Encode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// EncodeString is Encode over the raw bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// DecodeTolerant reverses query-string encoding without ever failing:
// '+' becomes a space, a '%' followed by two hex digits becomes that
// byte, and a '%' that does not start a valid escape stays a literal
// '%' byte. Malformed input therefore round-trips as literal bytes.
func DecodeTolerant(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			out = append(out, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			out = append(out, c)
		}
	}
	return out
}

func isUnreserved(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
