package notice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

// 게시판이 죽어 있어도 에러가 아니라 빈 목록이 나와야 함
func TestExtractDegradesToEmptyOnUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(scrape.NewFetcher(), testDomain)
	notices := service.Extract(context.Background(), server.URL)

	if notices == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(notices) != 0 {
		t.Errorf("got %d notices, want 0", len(notices))
	}
}
