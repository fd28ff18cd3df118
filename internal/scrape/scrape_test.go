package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestFetcherSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	if _, err := NewFetcher().GetBody(context.Background(), server.URL); err != nil {
		t.Fatalf("GetBody failed: %v", err)
	}
	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
}

func TestFetcherRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := NewFetcher().GetBody(context.Background(), server.URL); err == nil {
		t.Error("want error for 503 response")
	}
}

func TestFetcherPostFormEncodesBody(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotBody = r.PostForm.Get("selCafId")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	form := url.Values{"selCafId": {"h101"}}
	if _, err := NewFetcher().PostForm(context.Background(), server.URL, form); err != nil {
		t.Fatalf("PostForm failed: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody != "h101" {
		t.Errorf("selCafId = %q, want h101", gotBody)
	}
}

func mustSelection(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	return doc.Find("td").First()
}

func TestCleanText(t *testing.T) {
	sel := mustSelection(t, "<table><tr><td>  김치찌개 \n\t 쌀밥  </td></tr></table>")
	if got := CleanText(sel); got != "김치찌개 쌀밥" {
		t.Errorf("CleanText = %q, want %q", got, "김치찌개 쌀밥")
	}
}

func TestBlockTextKeepsLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "br separated dishes",
			html: "<table><tr><td>김치찌개<br>쌀밥<br>깍두기</td></tr></table>",
			want: "김치찌개\n쌀밥\n깍두기",
		},
		{
			name: "nested elements",
			html: "<table><tr><td><p>김치찌개</p><p>쌀밥</p></td></tr></table>",
			want: "김치찌개\n쌀밥",
		},
		{
			name: "whitespace only nodes dropped",
			html: "<table><tr><td>  김치찌개  <br>   </td></tr></table>",
			want: "김치찌개",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockText(mustSelection(t, tt.html)); got != tt.want {
				t.Errorf("BlockText = %q, want %q", got, tt.want)
			}
		})
	}
}
