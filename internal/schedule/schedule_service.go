package schedule

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

// rangeSegment는 "시작일 ~ 종료일" 형태의 날짜 범위에서
// 어느 쪽을 기준일로 삼을지 나타냅니다.
type rangeSegment int

const (
	firstSegment rangeSegment = iota // 범위의 시작일
	lastSegment                      // 범위의 종료일
)

// milestoneLabel은 일정 항목 텍스트와 Milestones 키의 대응입니다.
// 부분 문자열 포함으로 매칭하므로 같은 문구가 여러 항목에 나타나면
// 마지막 항목이 남습니다. (관찰된 페이지 동작과 동일하게 유지)
type milestoneLabel struct {
	substr  string
	key     string
	segment rangeSegment
}

// rangePolicy: 개강 계열은 범위의 시작일, 기말시험 계열은 범위의
// 종료일을 기준일로 봅니다. 학기마다 마크업 관례가 달라질 수 있어
// 테이블 수정만으로 정책을 바꿀 수 있게 했습니다.
var rangePolicy = []milestoneLabel{
	{"제1학기 개강", KeyFirstStart, firstSegment},
	{"제1학기 기말시험", KeyFirstEnd, lastSegment},
	{"제2학기 개강", KeySecondStart, firstSegment},
	{"제2학기 기말시험", KeySecondEnd, lastSegment},
}

// Service는 학사일정 페이지에서 학기 기준일을 추출합니다.
type Service struct {
	fetcher     *scrape.Fetcher
	calendarURL string
}

// NewService는 학사일정 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher, calendarURL string) *Service {
	return &Service{
		fetcher:     fetcher,
		calendarURL: calendarURL,
	}
}

// Extract는 학사일정 페이지를 가져와 기준일을 추출합니다.
// 실패 시 빈 Milestones를 반환합니다. (에러를 전파하지 않음)
func (s *Service) Extract(ctx context.Context) Milestones {
	doc, err := s.fetcher.GetDocument(ctx, s.calendarURL)
	if err != nil {
		log.Warnf("학사일정 페이지 조회 실패: %v", err)
		return Milestones{}
	}
	return parseMilestones(doc)
}

// parseMilestones는 학사일정 문서에서 기준일을 추출합니다.
func parseMilestones(doc *goquery.Document) Milestones {
	container := doc.Find("div.wrap-contents")
	if container.Length() == 0 {
		log.Warn("학사일정 콘텐츠 영역(div.wrap-contents)을 찾을 수 없습니다.")
		return Milestones{}
	}

	milestones := Milestones{}
	container.Find("li").Each(func(_ int, item *goquery.Selection) {
		dates := item.Find("p.list-date")
		events := item.Find("p.list-content")

		// 두 노드 목록을 같은 인덱스로 짝지어 읽습니다.
		// 길이가 다르면 짧은 쪽까지만 처리합니다.
		n := dates.Length()
		if events.Length() < n {
			n = events.Length()
		}

		for i := 0; i < n; i++ {
			dateText := scrape.CleanText(dates.Eq(i))
			eventText := scrape.CleanText(events.Eq(i))

			for _, label := range rangePolicy {
				if strings.Contains(eventText, label.substr) {
					milestones[label.key] = milestoneDate(dateText, label.segment)
				}
			}
		}
	})

	return milestones
}

// milestoneDate는 "03.02(월) ~ 06.20(금)" 형태의 날짜 텍스트에서
// 정책에 따라 시작일 또는 종료일을 골라냅니다.
// 범위가 아니면 전체 텍스트가 그대로 기준일이 됩니다.
func milestoneDate(dateText string, segment rangeSegment) string {
	parts := strings.Split(dateText, "~")
	if segment == firstSegment {
		return strings.TrimSpace(parts[0])
	}
	return strings.TrimSpace(parts[len(parts)-1])
}
