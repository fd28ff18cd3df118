package notice

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

// 게시판 1개당 최대 수집 글 수
const maxNotices = 10

// Service는 공지 게시판에서 최근 글 목록을 추출합니다.
type Service struct {
	fetcher *scrape.Fetcher
	domain  string // 루트 상대 링크를 절대 URL로 만들 때 쓰는 사이트 원점
}

// NewService는 공지 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher, domain string) *Service {
	return &Service{
		fetcher: fetcher,
		domain:  domain,
	}
}

// Extract는 게시판에서 최근 글을 최대 10건 추출합니다.
// 문서 순서를 유지하며 정렬은 하지 않습니다. (정렬은 대시보드 집계 담당)
// 실패 시 빈 슬라이스를 반환합니다.
func (s *Service) Extract(ctx context.Context, boardURL string) []Notice {
	doc, err := s.fetcher.GetDocument(ctx, boardURL)
	if err != nil {
		log.Warnf("공지 게시판(%s) 조회 실패: %v", boardURL, err)
		return []Notice{}
	}
	return parseNotices(doc, s.domain)
}

// parseNotices는 게시판 문서에서 공지 목록을 추출합니다.
// 상단 고정(class="notice") 행은 건너뜁니다. 제목 셀, 날짜 셀,
// 링크 중 하나라도 없는 행은 집계 없이 조용히 버립니다.
func parseNotices(doc *goquery.Document, domain string) []Notice {
	notices := make([]Notice, 0, maxNotices)

	doc.Find("tbody tr").Not(".notice").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		subject := row.Find("td.td-subject").First()
		date := row.Find("td.td-date").First()
		anchor := subject.Find("a").First()
		if subject.Length() == 0 || date.Length() == 0 || anchor.Length() == 0 {
			return true
		}

		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}

		// 제목이 스타일링용 <strong>으로 감싸진 페이지 대응
		title := scrape.CleanText(anchor)
		if strong := anchor.Find("strong").First(); strong.Length() > 0 {
			title = scrape.CleanText(strong)
		}
		if anchor.Find("span.new").Length() > 0 {
			title += " (NEW)"
		}

		notices = append(notices, Notice{
			Date:  scrape.CleanText(date),
			Title: title,
			Link:  domain + href, // 게시판 href는 항상 루트 상대 경로
		})
		return len(notices) < maxNotices
	})

	return notices
}
