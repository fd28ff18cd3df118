package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

var kst = time.FixedZone("KST", 9*60*60)

// Service는 기상청 실황/단기예보 두 응답을 하나의 Reading으로 정규화합니다.
type Service struct {
	fetcher    *scrape.Fetcher
	serviceKey string
	ncstURL    string // 초단기실황 (getUltraSrtNcst)
	fcstURL    string // 단기예보 (getVilageFcst)
}

// NewService는 날씨 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher, cfg *config.Config) *Service {
	return &Service{
		fetcher:    fetcher,
		serviceKey: cfg.WeatherServiceKey,
		ncstURL:    cfg.WeatherNcstURL,
		fcstURL:    cfg.WeatherFcstURL,
	}
}

// Get은 캠퍼스 격자 좌표의 현재 날씨를 조회합니다.
// 두 호출 중 하나라도 실패하면 부분 데이터 대신 에러 상태를 반환합니다.
func (s *Service) Get(ctx context.Context, campus config.Campus) Result {
	now := time.Now().In(kst)

	reading := newReading()

	// 1. 초단기실황 (현재 기온/습도/강수형태)
	ncstDate, ncstTime := ncstAnchor(now)
	ncstItems, err := s.callKMA(ctx, s.ncstURL, ncstDate, ncstTime, campus, 10)
	if err != nil {
		log.Errorf("기상청 실황 조회 실패: %v", err)
		return Result{Status: "error", Message: err.Error()}
	}
	reduceNcst(ncstItems, &reading)

	// 2. 단기예보 (오늘 최저/최고기온, 하늘 상태)
	fcstDate, fcstTime, targetDate := fcstAnchor(now)
	fcstItems, err := s.callKMA(ctx, s.fcstURL, fcstDate, fcstTime, campus, 1000)
	if err != nil {
		log.Errorf("기상청 예보 조회 실패: %v", err)
		return Result{Status: "error", Message: err.Error()}
	}
	tomorrow := now.AddDate(0, 0, 1).Format("20060102")
	reduceFcst(fcstItems, targetDate, tomorrow, &reading)

	return Result{
		Status:       "success",
		CheckTime:    ncstDate + " " + ncstTime,
		ForecastTime: fcstDate + " " + fcstTime,
		Data:         &reading,
	}
}

// ncstAnchor는 초단기실황의 기준 시각을 계산합니다.
// 실황은 매시 10분 이후에 공개되므로, 현재 분이 10 미만이면
// 직전 시각의 데이터를 요청합니다.
func ncstAnchor(now time.Time) (baseDate, baseTime string) {
	anchor := now
	if now.Minute() < 10 {
		anchor = now.Add(-time.Hour)
	}
	return anchor.Format("20060102"), anchor.Format("15") + "00"
}

// fcstAnchor는 단기예보의 발표 시각을 계산합니다.
// 오늘의 최저/최고기온이 모두 들어 있다고 보장되는 발표본은
// 어제 23시 발표본뿐이므로 항상 그것을 사용합니다.
// (자정 부근에서 "가장 최근 발표본" 전략과 값이 달라집니다)
func fcstAnchor(now time.Time) (baseDate, baseTime, targetDate string) {
	yesterday := now.AddDate(0, 0, -1)
	return yesterday.Format("20060102"), "2300", now.Format("20060102")
}

func (s *Service) callKMA(ctx context.Context, endpoint, baseDate, baseTime string, campus config.Campus, rows int) ([]kmaItem, error) {
	query := url.Values{
		"serviceKey": {s.serviceKey},
		"pageNo":     {"1"},
		"numOfRows":  {strconv.Itoa(rows)},
		"dataType":   {"JSON"},
		"base_date":  {baseDate},
		"base_time":  {baseTime},
		"nx":         {strconv.Itoa(campus.GridX)},
		"ny":         {strconv.Itoa(campus.GridY)},
	}

	body, err := s.fetcher.GetBody(ctx, endpoint+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var resp kmaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("기상청 응답 파싱 실패: %w", err)
	}
	if code := resp.Response.Header.ResultCode; code != "00" {
		return nil, fmt.Errorf("기상청 응답 에러 (%s): %s", code, resp.Response.Header.ResultMsg)
	}
	return resp.Response.Body.Items.Item, nil
}

// reduceNcst는 실황 항목을 카테고리별로 걸러 담습니다.
// 같은 카테고리가 중복되면 마지막 값이 남습니다.
func reduceNcst(items []kmaItem, r *Reading) {
	for _, item := range items {
		switch item.Category {
		case "T1H":
			r.Temp = item.ObsrValue
		case "REH":
			r.Humidity = item.ObsrValue
		case "PTY":
			r.RainType = item.ObsrValue
		}
	}
}

// reduceFcst는 예보 항목에서 하늘 상태와 오늘의 최저/최고기온을 고릅니다.
//   - SKY: 대상일의 가장 늦은 시각 값. 대상일 값이 없으면 다음날 값.
//   - TMN/TMX: 대상일과 정확히 일치하는 값. 없으면 대상일/다음날 중
//     먼저 나오는 값.
func reduceFcst(items []kmaItem, targetDate, tomorrow string, r *Reading) {
	var skyTime, skyNextTime string
	var tmnExact, tmxExact bool

	for _, item := range items {
		switch item.Category {
		case "SKY":
			if item.FcstDate == targetDate && item.FcstTime > skyTime {
				skyTime = item.FcstTime
				r.Sky = item.FcstValue
			} else if skyTime == "" && item.FcstDate == tomorrow && item.FcstTime > skyNextTime {
				skyNextTime = item.FcstTime
				r.Sky = item.FcstValue
			}
		case "TMN":
			if item.FcstDate == targetDate && !tmnExact {
				r.Tmn = item.FcstValue
				tmnExact = true
			} else if !tmnExact && r.Tmn == Missing && item.FcstDate == tomorrow {
				r.Tmn = item.FcstValue
			}
		case "TMX":
			if item.FcstDate == targetDate && !tmxExact {
				r.Tmx = item.FcstValue
				tmxExact = true
			} else if !tmxExact && r.Tmx == Missing && item.FcstDate == tomorrow {
				r.Tmx = item.FcstValue
			}
		}
	}
}
