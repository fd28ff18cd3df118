package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Campus는 캠퍼스별 고정 상수 테이블입니다. (프로세스 시작 시 1회 구성)
type Campus struct {
	ID               string // 학식 API의 캠퍼스 구분값 ("1": 서울, "2": 글로벌)
	CafeteriaID      string // 학식 API의 식당 코드
	GeneralBoardURL  string // 일반공지 게시판
	AcademicBoardURL string // 학사공지 게시판
	LibraryURL       string // 도서관 좌석 현황 API
	GridX            int    // 기상청 격자 X
	GridY            int    // 기상청 격자 Y
}

// Config는 서비스 전역 설정입니다.
type Config struct {
	ServerPort        string `json:"server_port"`
	HufsDomain        string `json:"hufs_domain"`
	CalendarPath      string `json:"calendar_path"`
	CafeteriaPath     string `json:"cafeteria_path"`
	WeatherServiceKey string `json:"weather_service_key"`
	WeatherNcstURL    string `json:"weather_ncst_url"`
	WeatherFcstURL    string `json:"weather_fcst_url"`
	TimetableURL      string `json:"timetable_url"`

	// 캠퍼스 식별자("SEOUL", "GLOBAL") -> 고정 상수 테이블
	Campuses map[string]Campus `json:"-"`
}

// Load는 JSON 설정 파일을 읽고 캠퍼스 테이블을 구성합니다.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("설정 파일 열기 실패: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	cfg.applyDefaults()

	// (우선순위) 환경변수 > 설정 파일 > 기본값
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.ServerPort = port
	}
	if key := os.Getenv("WEATHER_SERVICE_KEY"); key != "" {
		cfg.WeatherServiceKey = key
	}

	cfg.Campuses = map[string]Campus{
		"SEOUL": {
			ID:               "1",
			CafeteriaID:      "h101",
			GeneralBoardURL:  cfg.HufsDomain + "/hufs/11281/subview.do",
			AcademicBoardURL: cfg.HufsDomain + "/hufs/11282/subview.do",
			LibraryURL:       "https://library.hufs.ac.kr/pyxis-api/1/api/seat-rooms?branchGroupId=1",
			GridX:            61,
			GridY:            127,
		},
		"GLOBAL": {
			ID:               "2",
			CafeteriaID:      "h203",
			GeneralBoardURL:  cfg.HufsDomain + "/hufs/11319/subview.do",
			AcademicBoardURL: cfg.HufsDomain + "/hufs/11320/subview.do",
			LibraryURL:       "https://library.hufs.ac.kr/pyxis-api/1/api/seat-rooms?branchGroupId=2",
			GridX:            65,
			GridY:            122,
		},
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = "3000"
	}
	if c.HufsDomain == "" {
		c.HufsDomain = "https://www.hufs.ac.kr"
	}
	if c.CalendarPath == "" {
		c.CalendarPath = "/hufs/11287/subview.do"
	}
	if c.CafeteriaPath == "" {
		c.CafeteriaPath = "/cafeteria/hufs/1/getMenu.do"
	}
	if c.WeatherNcstURL == "" {
		c.WeatherNcstURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getUltraSrtNcst"
	}
	if c.WeatherFcstURL == "" {
		c.WeatherFcstURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getVilageFcst"
	}
	if c.TimetableURL == "" {
		c.TimetableURL = "https://wis.hufs.ac.kr/src08/jsp/lecture/LECTURE2024L.jsp"
	}
}

// CalendarURL은 학사일정 페이지의 고정 URL입니다.
func (c *Config) CalendarURL() string {
	return c.HufsDomain + c.CalendarPath
}

// CafeteriaURL은 주간 학식 메뉴 API의 URL입니다.
func (c *Config) CafeteriaURL() string {
	return c.HufsDomain + c.CafeteriaPath
}
