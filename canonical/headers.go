package canonical

import (
	"sort"
	"strings"

	"github.com/vortex-fintech/go-reqsign/frame"
)

// Headers normalizes request headers: names are lowercased, values are
// trimmed of leading/trailing ASCII whitespace (internal whitespace is
// kept as-is), values of equal names are comma-joined in appearance
// order, and groups are sorted by name. Each group is emitted as
// "name:value\n"; the concatenation of all lines is returned.
func Headers(headers []frame.Header) string {
	order := make([]string, 0, len(headers))
	grouped := make(map[string][]string, len(headers))

	for _, h := range headers {
		name := strings.ToLower(h.Name)
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], trimASCII(h.Value))
	}
	sort.Strings(order)

	var b strings.Builder
	for _, name := range order {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(grouped[name], ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func trimASCII(s string) string {
	return strings.Trim(s, " \t\r\n")
}
