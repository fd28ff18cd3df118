package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup" // (독립적인 업스트림 호출들을 병렬로 처리)

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/meal"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/notice"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/schedule"
)

// 날짜가 비어 있는 공지는 이 값으로 내림차순 정렬의 맨 뒤로 보냅니다.
const minDateSentinel = "0000.00.00"

// Service는 캠퍼스 대시보드 데이터를 집계합니다.
// (여러 추출 서비스에 의존합니다)
type Service struct {
	scheduleService *schedule.Service
	noticeService   *notice.Service
	mealService     *meal.Service
}

// NewService는 대시보드 서비스를 생성합니다.
func NewService(ss *schedule.Service, ns *notice.Service, ms *meal.Service) *Service {
	return &Service{
		scheduleService: ss,
		noticeService:   ns,
		mealService:     ms,
	}
}

// GetCampusData는 학사일정, 공지 게시판 2곳, 학식 메뉴를 병렬로
// 추출하여 하나의 응답으로 합칩니다. 각 추출기는 실패를 스스로
// 빈 값으로 흡수하므로 한 호출의 실패가 다른 호출을 취소하지 않습니다.
func (s *Service) GetCampusData(ctx context.Context, campus config.Campus) *CampusData {
	data := &CampusData{}
	var general, academic []notice.Notice

	var eg errgroup.Group
	eg.Go(func() error {
		data.Schedule = s.scheduleService.Extract(ctx)
		return nil
	})
	eg.Go(func() error {
		general = s.noticeService.Extract(ctx, campus.GeneralBoardURL)
		return nil
	})
	eg.Go(func() error {
		academic = s.noticeService.Extract(ctx, campus.AcademicBoardURL)
		return nil
	})
	eg.Go(func() error {
		data.Meals = s.mealService.Extract(ctx, campus)
		return nil
	})
	_ = eg.Wait() // 추출기는 에러를 반환하지 않음 (빈 값으로 degrade)

	data.Notices = mergeNotices(general, academic)
	data.Timestamp = time.Now().Format(time.RFC3339)
	return data
}

// mergeNotices는 두 게시판의 공지를 합쳐 날짜 내림차순으로 정렬합니다.
// 게시일은 고정폭 YYYY.MM.DD라 문자열 비교가 곧 날짜 비교입니다.
func mergeNotices(general, academic []notice.Notice) []notice.Notice {
	merged := make([]notice.Notice, 0, len(general)+len(academic))
	merged = append(merged, general...)
	merged = append(merged, academic...)

	sort.SliceStable(merged, func(i, j int) bool {
		return noticeDate(merged[i]) > noticeDate(merged[j])
	})
	return merged
}

func noticeDate(n notice.Notice) string {
	if n.Date == "" {
		return minDateSentinel
	}
	return n.Date
}
