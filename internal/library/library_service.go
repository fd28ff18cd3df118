package library

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

// Service는 도서관 좌석 현황 API를 그대로 전달합니다.
// 내부 모델링 없이 업스트림 JSON에 campus 태그만 붙입니다.
type Service struct {
	fetcher *scrape.Fetcher
}

// NewService는 도서관 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Get은 좌석 현황을 조회합니다. 실패 시 campus 태그만 담긴 맵을
// 반환합니다. (대시보드 위젯이라 빈 값이 곧 설명이 됩니다)
func (s *Service) Get(ctx context.Context, campusKey string, campus config.Campus) map[string]interface{} {
	body, err := s.fetcher.GetBody(ctx, campus.LibraryURL)
	if err != nil {
		log.Warnf("도서관 좌석 현황(%s) 조회 실패: %v", campusKey, err)
		return map[string]interface{}{"campus": campusKey}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		log.Warnf("도서관 좌석 현황(%s) 파싱 실패: %v", campusKey, err)
		return map[string]interface{}{"campus": campusKey}
	}

	data["campus"] = campusKey
	return data
}
