package canonical

import (
	"sort"
	"strings"

	"github.com/vortex-fintech/go-reqsign/uriutil"
)

// Query normalizes a raw query string:
//
//  1. split on '&', split each token on the first '=';
//  2. tolerant-decode names and values (broken escapes stay literal);
//  3. merge values of equal decoded names, comma-joined in appearance order;
//  4. re-encode names and merged values;
//  5. sort pairs by encoded name bytes and join with '&'.
//
// Decode-before-merge-before-reencode means valid escapes round-trip
// unchanged while malformed ones come out fully escaped (%2TRUE% turns
// into %252TRUE%25), and '+' is honored as the legacy space encoding.
func Query(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	// порядок появления имён важен для склейки значений
	order := make([]string, 0, 8)
	grouped := make(map[string][]string, 8)

	for _, token := range strings.Split(rawQuery, "&") {
		rawName, rawValue := token, ""
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			rawName, rawValue = token[:eq], token[eq+1:]
		}
		name := string(uriutil.DecodeTolerant(rawName))
		value := string(uriutil.DecodeTolerant(rawValue))
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], value)
	}

	type pair struct{ name, value string }
	pairs := make([]pair, 0, len(order))
	for _, name := range order {
		merged := strings.Join(grouped[name], ",")
		pairs = append(pairs, pair{
			name:  uriutil.EncodeString(name),
			value: uriutil.EncodeString(merged),
		})
	}
	// sort by encoded name, not by the joined pair: "a" must precede "a1"
	// even though '=' compares above '1'
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.name)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
