package weather

// Missing은 "응답에서 해당 항목을 찾지 못함"을 뜻하는 고정 표기입니다.
// 필드 누락과 구분하기 위해 키는 항상 존재하고 값만 "-"가 됩니다.
const Missing = "-"

// Reading은 두 기상청 응답을 합쳐 만든 평탄화된 관측/예보 값입니다.
// 각 필드는 서로 독립이며 일부만 채워지는 것이 정상 동작입니다.
type Reading struct {
	Temp     string `json:"temp"`     // 기온 (T1H)
	Humidity string `json:"humidity"` // 습도 (REH)
	RainType string `json:"rainType"` // 강수 형태 (PTY)
	Sky      string `json:"sky"`      // 하늘 상태 (SKY)
	Tmn      string `json:"tmn"`      // 오늘 최저기온 (TMN)
	Tmx      string `json:"tmx"`      // 오늘 최고기온 (TMX)
}

func newReading() Reading {
	return Reading{
		Temp:     Missing,
		Humidity: Missing,
		RainType: Missing,
		Sky:      Missing,
		Tmn:      Missing,
		Tmx:      Missing,
	}
}

// Result는 날씨 엔드포인트의 응답 봉투입니다. 날씨는 두 호출이 모두
// 성공해야 신뢰할 수 있으므로, 여기서는 조용한 빈 값 대신 명시적
// 에러 상태를 내보냅니다.
type Result struct {
	Status       string   `json:"status"` // "success" | "error"
	Message      string   `json:"message,omitempty"`
	CheckTime    string   `json:"checkTime,omitempty"`    // 실황 기준 시각
	ForecastTime string   `json:"forecastTime,omitempty"` // 예보 발표 시각
	Data         *Reading `json:"data,omitempty"`
}

// 기상청 단기예보 API 응답 (필요한 부분만)
type kmaResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item []kmaItem `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type kmaItem struct {
	Category  string `json:"category"`
	ObsrValue string `json:"obsrValue"` // 실황 값
	FcstDate  string `json:"fcstDate"`  // 예보 대상 일자 (YYYYMMDD)
	FcstTime  string `json:"fcstTime"`  // 예보 대상 시각 (HHmm)
	FcstValue string `json:"fcstValue"` // 예보 값
}
