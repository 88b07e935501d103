package canonical_test

import (
	"testing"

	"github.com/vortex-fintech/go-reqsign/canonical"
)

func TestQuery_Empty(t *testing.T) {
	if got := canonical.Query(""); got != "" {
		t.Fatalf("empty raw query must canonicalize to empty string, got %q", got)
	}
}

func TestQuery_MergeAndSort(t *testing.T) {
	got := canonical.Query("test=2&example=all+please&1234=4321&test=1")
	want := "1234=4321&example=all%20please&test=2%2C1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuery_ValidEncodingRoundTrips(t *testing.T) {
	got := canonical.Query("mix=1%C2%B11&test=true")
	want := "mix=1%C2%B11&test=true"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuery_MalformedEscapesEscapedOnOutput(t *testing.T) {
	got := canonical.Query("bad=%2TRUE%")
	want := "bad=%252TRUE%25"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuery_NoEqualsMeansEmptyValue(t *testing.T) {
	if got := canonical.Query("flag"); got != "flag=" {
		t.Fatalf("got %q", got)
	}
	if got := canonical.Query("b&a=1"); got != "a=1&b=" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_SplitsOnFirstEqualsOnly(t *testing.T) {
	if got := canonical.Query("k=a=b"); got != "k=a%3Db" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_NamesMergeAfterDecode(t *testing.T) {
	// %6B decodes to 'k': both parameters share a decoded name
	if got := canonical.Query("k=1&%6B=2"); got != "k=1%2C2" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_MergedCommaIsEncoded(t *testing.T) {
	if got := canonical.Query("a=x,y&a=z"); got != "a=x%2Cy%2Cz" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_SortIsByEncodedNameBytes(t *testing.T) {
	// name sort, not pair sort: "a" before "a1" despite '=' > '1'
	if got := canonical.Query("a1=2&a=1"); got != "a=1&a1=2" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_PlusInNameAndValue(t *testing.T) {
	if got := canonical.Query("my+key=my+value"); got != "my%20key=my%20value" {
		t.Fatalf("got %q", got)
	}
}

func TestQuery_MergeOrderIsAppearanceOrder(t *testing.T) {
	if got := canonical.Query("x=3&y=0&x=1&x=2"); got != "x=3%2C1%2C2&y=0" {
		t.Fatalf("got %q", got)
	}
}
