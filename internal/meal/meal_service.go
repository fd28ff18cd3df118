package meal

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

var kst = time.FixedZone("KST", 9*60*60)

const (
	// 메뉴 미등록 안내 문구. 이 문구가 포함된 항목은 메뉴로 취급하지 않습니다.
	noMenuMarker = "등록된 메뉴가"

	// 글로벌캠퍼스 이벤트데이 셀의 첫 항목에 들어가는 고정 문구
	eventDayMarker = "이벤트데이"
)

// Service는 주간 학식 메뉴를 추출합니다.
type Service struct {
	fetcher      *scrape.Fetcher
	cafeteriaURL string
}

// NewService는 학식 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher, cafeteriaURL string) *Service {
	return &Service{
		fetcher:      fetcher,
		cafeteriaURL: cafeteriaURL,
	}
}

// Extract는 캠퍼스의 이번 주 학식 메뉴를 추출합니다.
// 실패 시 빈 슬라이스를 반환합니다.
func (s *Service) Extract(ctx context.Context, campus config.Campus) []Slot {
	today := time.Now().In(kst)
	start, end := weekWindow(today)
	first, last := monthWindow(today, start, end)

	form := url.Values{
		"selCafId":        {campus.CafeteriaID},
		"selWeekFirstDay": {strconv.Itoa(first)},
		"selWeekLastDay":  {strconv.Itoa(last)},
		"selYear":         {strconv.Itoa(today.Year())},
		"selMonth":        {strconv.Itoa(int(today.Month()))},
	}

	doc, err := s.fetcher.PostFormDocument(ctx, s.cafeteriaURL, form)
	if err != nil {
		log.Warnf("학식 메뉴(%s) 조회 실패: %v", campus.CafeteriaID, err)
		return []Slot{}
	}
	return parseMeals(doc, campus.ID)
}

// parseMeals는 주간 메뉴 테이블에서 시간대별 메뉴를 추출합니다.
// th(시간대 라벨)와 td(요일별 셀)를 모두 가진 행만 시간대가 됩니다.
func parseMeals(doc *goquery.Document, campusID string) []Slot {
	slots := make([]Slot, 0, 3)

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		cells := row.Find("td")
		if th.Length() == 0 || cells.Length() == 0 {
			return
		}

		mealTime := scrape.CleanText(th)
		menus := make([]Item, 0, cells.Length())

		cells.Each(func(_ int, cell *goquery.Selection) {
			name := extractCellName(cell, campusID)

			// 서울캠퍼스 조식 행의 방학 안내 문구 축약 (표기 정리)
			if campusID == "1" && strings.Contains(mealTime, "조식") {
				name = strings.ReplaceAll(name, "방학중에는", "방학")
			}

			name = strings.TrimSpace(name)
			if name == "" || strings.Contains(name, noMenuMarker) {
				return
			}

			menus = append(menus, Item{
				Name:  name,
				Price: scrape.CleanText(cell.Find("p.pay").First()),
			})
		})

		slots = append(slots, Slot{Time: mealTime, Menus: menus})
	})

	return slots
}

// cellShape는 요일 셀이 취한 마크업 형태 하나를 판별합니다.
// 해당 형태가 아니면 두 번째 반환값이 false입니다.
type cellShape func(cell *goquery.Selection, campusID string) (string, bool)

// 셀 형태는 닫힌 집합이며 우선순위 순서대로 시도합니다:
// 이벤트데이 -> 목록 -> 강조 텍스트 -> 일반 텍스트
var cellShapes = []cellShape{
	eventDayCell,
	listCell,
	highlightCell,
	plainCell,
}

func extractCellName(cell *goquery.Selection, campusID string) string {
	for _, shape := range cellShapes {
		if name, ok := shape(cell, campusID); ok {
			return name
		}
	}
	return ""
}

// eventDayCell: 글로벌캠퍼스 전용. 첫 목록 항목이 강조 표시된
// 이벤트데이 안내 문구면 실제 메뉴는 두 번째 항목에 있습니다.
func eventDayCell(cell *goquery.Selection, campusID string) (string, bool) {
	if campusID != "2" {
		return "", false
	}
	items := cell.Find("li")
	if items.Length() < 2 {
		return "", false
	}
	first := items.Eq(0)
	if first.Find("strong.point").Length() == 0 || !strings.Contains(first.Text(), eventDayMarker) {
		return "", false
	}
	return scrape.BlockText(items.Eq(1)), true
}

// listCell: 목록 항목이 있는 셀. 강조(point) 항목이 있으면 그 항목들만,
// 없으면 모든 항목의 텍스트를 줄바꿈으로 이어 붙입니다.
func listCell(cell *goquery.Selection, _ string) (string, bool) {
	items := cell.Find("li")
	if items.Length() == 0 {
		return "", false
	}

	var point, all []string
	items.Each(func(_ int, li *goquery.Selection) {
		if strong := li.Find("strong.point"); strong.Length() > 0 {
			point = append(point, scrape.CleanText(strong))
		}
		all = append(all, scrape.CleanText(li))
	})

	if len(point) > 0 {
		return strings.Join(point, "\n"), true
	}
	return strings.Join(all, "\n"), true
}

// highlightCell: 목록 없이 강조 항목만 있는 셀.
func highlightCell(cell *goquery.Selection, _ string) (string, bool) {
	strongs := cell.Find("strong.point")
	if strongs.Length() == 0 {
		return "", false
	}

	var names []string
	strongs.Each(func(_ int, strong *goquery.Selection) {
		names = append(names, scrape.CleanText(strong))
	})
	return strings.Join(names, "\n"), true
}

// plainCell: 그 외 모든 셀. 끝에 붙는 가격 요소를 떼어낸 뒤
// 셀의 원시 텍스트를 사용합니다.
func plainCell(cell *goquery.Selection, _ string) (string, bool) {
	clone := cell.Clone()
	clone.Find("p.pay").Remove()
	return scrape.BlockText(clone), true
}
