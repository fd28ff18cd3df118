package dashboard

import (
	"github.com/ChoRockKim/Hufs-Clock-API/internal/meal"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/notice"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/schedule"
)

// CampusData는 캠퍼스 대시보드 응답 봉투입니다.
// 매 요청마다 새로 만들어지며 내부에 캐시하지 않습니다.
// (캐싱은 응답 헤더를 통해 중간 캐시가 담당)
type CampusData struct {
	Schedule  schedule.Milestones `json:"schedule"`
	Notices   []notice.Notice     `json:"notices"`
	Meals     []meal.Slot         `json:"meals"`
	Timestamp string              `json:"timestamp"` // RFC 3339
}
