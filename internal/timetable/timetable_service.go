package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
)

// 업스트림 종합강의시간표 시스템이 요구하는 고정 식별자
const (
	searchMode  = "30"    // 강의 조회 모드
	searchClass = "B0001" // 학부 강의 구분
)

// 요청의 요일/교시 코드 -> 업스트림 필드명
var (
	dayFields  = buildFlagFields("d", "gubun", 6)
	timeFields = buildFlagFields("t", "time", 12)
)

func buildFlagFields(reqPrefix, upstreamPrefix string, n int) map[string]string {
	fields := make(map[string]string, n)
	for i := 1; i <= n; i++ {
		fields[reqPrefix+strconv.Itoa(i)] = upstreamPrefix + strconv.Itoa(i)
	}
	return fields
}

// Service는 검색 요청을 업스트림 시간표 시스템의 평탄한 필드 집합으로
// 변환하고, 응답을 CourseRecord 목록으로 투영합니다.
type Service struct {
	fetcher      *scrape.Fetcher
	timetableURL string
}

// NewService는 시간표 서비스를 생성합니다.
func NewService(fetcher *scrape.Fetcher, timetableURL string) *Service {
	return &Service{
		fetcher:      fetcher,
		timetableURL: timetableURL,
	}
}

// Search는 강의를 검색합니다. 이 엔드포인트는 사용자 대면 검색이라
// 조용한 빈 결과("검색 결과 없음"과 구분 불가) 대신 에러를 반환합니다.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]CourseRecord, error) {
	body, err := s.fetcher.PostForm(ctx, s.timetableURL, buildForm(req))
	if err != nil {
		return nil, fmt.Errorf("시간표 조회 실패: %w", err)
	}
	return decodeCourses(body)
}

// buildForm은 업스트림이 요구하는 전체 필드 집합을 만듭니다.
// 6개 요일 플래그와 12개 교시 플래그는 전부 "N"으로 깔아 둔 뒤
// 요청에서 "Y"로 지정한 것만 덮어씁니다.
func buildForm(req SearchRequest) url.Values {
	form := url.Values{
		"mode":        {searchMode},
		"class_gb":    {searchClass},
		"ledg_year":   {req.Year},
		"ledg_sessn":  {req.Semester},
		"campus_sect": {req.Campus},
		"dept_cd":     {req.DeptCode},
		"gwamokname":  {req.Keyword},
		"gubun":       {req.Gubun},
		"profname":    {req.Professor},
	}

	for code, field := range dayFields {
		form.Set(field, flagValue(req.Days[code]))
	}
	for code, field := range timeFields {
		form.Set(field, flagValue(req.Times[code]))
	}
	return form
}

func flagValue(v string) string {
	if v == "Y" {
		return "Y"
	}
	return "N"
}

// decodeCourses는 퍼센트 인코딩된 JSON 본문을 해석합니다.
// 업스트림은 JSON을 URI 인코딩한 텍스트로 응답하며, data 필드는
// 결과가 1건이면 객체, 여러 건이면 배열로 옵니다. 항상 배열로
// 정규화합니다.
func decodeCourses(body []byte) ([]CourseRecord, error) {
	decoded, err := url.QueryUnescape(string(body))
	if err != nil {
		return nil, fmt.Errorf("시간표 응답 디코딩 실패: %w", err)
	}

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(decoded), &resp); err != nil {
		return nil, fmt.Errorf("시간표 응답 파싱 실패: %w", err)
	}
	if len(resp.Data) == 0 {
		return []CourseRecord{}, nil
	}

	var courses []upstreamCourse
	if err := json.Unmarshal(resp.Data, &courses); err != nil {
		// 단건 응답은 객체로 오므로 배열 해석 실패 시 다시 시도
		var single upstreamCourse
		if err := json.Unmarshal(resp.Data, &single); err != nil {
			return nil, fmt.Errorf("시간표 레코드 파싱 실패: %w", err)
		}
		courses = []upstreamCourse{single}
	}

	records := make([]CourseRecord, 0, len(courses))
	for _, course := range courses {
		records = append(records, course.toRecord())
	}
	return records, nil
}
