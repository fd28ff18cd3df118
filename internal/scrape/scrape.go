package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// 봇 차단을 피하기 위한 데스크톱 브라우저 User-Agent (모든 외부 요청 공통)
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// 외부 호출 1건당 타임아웃. 전체 응답 지연을 여기서 묶습니다.
	defaultTimeout = 5 * time.Second
)

// Fetcher는 모든 추출기가 공유하는 외부 HTTP 클라이언트입니다.
type Fetcher struct {
	client *http.Client
}

// NewFetcher는 공용 Fetcher를 생성합니다.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (f *Fetcher) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("비정상 응답 코드: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 본문 읽기 실패: %w", err)
	}
	return data, nil
}

// GetBody는 GET 요청의 본문을 그대로 반환합니다.
func (f *Fetcher) GetBody(ctx context.Context, rawURL string) ([]byte, error) {
	return f.do(ctx, http.MethodGet, rawURL, nil, "")
}

// PostForm은 폼 POST 요청의 본문을 그대로 반환합니다.
func (f *Fetcher) PostForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	return f.do(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded")
}

// GetDocument는 GET 요청 결과를 goquery 문서로 파싱하여 반환합니다.
func (f *Fetcher) GetDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	data, err := f.GetBody(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(data))
}

// PostFormDocument는 폼 POST 요청 결과를 goquery 문서로 파싱하여 반환합니다.
func (f *Fetcher) PostFormDocument(ctx context.Context, rawURL string, form url.Values) (*goquery.Document, error) {
	data, err := f.PostForm(ctx, rawURL, form)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(data))
}
