package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const liteFixture = `<html><body><table>
<tr><td><a rel="nofollow" href="https://example.com/gate-syllabus" class="result-link">GATE Syllabus 2026</a></td></tr>
<tr><td class="result-snippet">Complete GATE syllabus with all subjects and topics.</td></tr>
<tr><td><a rel="nofollow" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fother.org%2Fsyllabus&amp;rut=abc" class="result-link">Other Syllabus</a></td></tr>
<tr><td class="result-snippet">Second snippet.</td></tr>
<tr><td><a href="/internal" class="result-link">Internal link</a></td></tr>
</table></body></html>`

func TestParseLiteResults(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(liteFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	results := parseLiteResults(doc)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(results), results)
	}
	if results[0].URL != "https://example.com/gate-syllabus" {
		t.Errorf("result 0 url = %q", results[0].URL)
	}
	if results[0].Title != "GATE Syllabus 2026" {
		t.Errorf("result 0 title = %q", results[0].Title)
	}
	if results[0].Snippet != "Complete GATE syllabus with all subjects and topics." {
		t.Errorf("result 0 snippet = %q", results[0].Snippet)
	}
	if results[1].URL != "https://other.org/syllabus" {
		t.Errorf("redirect link not unwrapped: %q", results[1].URL)
	}
}

func TestResolveDDGHref(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/a", "https://example.com/a"},
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Ftarget.org%2Fp", "https://target.org/p"},
		{"https://duckduckgo.com/settings", ""},
		{"javascript:void(0)", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := resolveDDGHref(tc.in); got != tc.want {
			t.Errorf("resolveDDGHref(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDuckDuckGo_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if q := r.PostFormValue("q"); !strings.Contains(q, "syllabus") {
			t.Errorf("unexpected query %q", q)
		}
		w.Write([]byte(liteFixture))
	}))
	defer srv.Close()

	d := NewDuckDuckGo()
	d.endpoint = srv.URL

	results, err := d.Search(context.Background(), "fetch the latest syllabus for the exam GATE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestDuckDuckGo_EmptyQuery(t *testing.T) {
	d := NewDuckDuckGo()
	if _, err := d.Search(context.Background(), "  "); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestDuckDuckGo_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	d := NewDuckDuckGo()
	d.endpoint = srv.URL
	if _, err := d.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error for non-200 response")
	}
}
