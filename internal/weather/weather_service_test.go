package weather

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, kst)
}

func TestNcstAnchor(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantDate string
		wantTime string
	}{
		// 매시 10분 이후에야 해당 시각 실황이 공개됨
		{"before publication uses previous hour", at(2024, time.March, 5, 14, 5), "20240305", "1300"},
		{"after publication uses current hour", at(2024, time.March, 5, 14, 30), "20240305", "1400"},
		{"exactly at ten past", at(2024, time.March, 5, 14, 10), "20240305", "1400"},
		{"midnight rollover crosses the date", at(2024, time.March, 5, 0, 5), "20240304", "2300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDate, gotTime := ncstAnchor(tt.now)
			if gotDate != tt.wantDate || gotTime != tt.wantTime {
				t.Errorf("ncstAnchor(%s) = (%s, %s), want (%s, %s)",
					tt.now.Format("2006-01-02 15:04"), gotDate, gotTime, tt.wantDate, tt.wantTime)
			}
		})
	}
}

func TestFcstAnchorAlwaysYesterdayEvening(t *testing.T) {
	baseDate, baseTime, targetDate := fcstAnchor(at(2024, time.March, 5, 9, 30))

	if baseDate != "20240304" || baseTime != "2300" {
		t.Errorf("issuance = (%s, %s), want (20240304, 2300)", baseDate, baseTime)
	}
	if targetDate != "20240305" {
		t.Errorf("targetDate = %s, want 20240305", targetDate)
	}
}

func TestReduceNcst(t *testing.T) {
	reading := newReading()
	reduceNcst([]kmaItem{
		{Category: "T1H", ObsrValue: "3.2"},
		{Category: "REH", ObsrValue: "55"},
		{Category: "PTY", ObsrValue: "0"},
		{Category: "T1H", ObsrValue: "3.5"}, // 중복이면 마지막 값이 남음
		{Category: "VEC", ObsrValue: "190"}, // 무관한 카테고리는 무시
	}, &reading)

	if reading.Temp != "3.5" {
		t.Errorf("Temp = %q, want 3.5", reading.Temp)
	}
	if reading.Humidity != "55" {
		t.Errorf("Humidity = %q, want 55", reading.Humidity)
	}
	if reading.RainType != "0" {
		t.Errorf("RainType = %q, want 0", reading.RainType)
	}
}

func TestReduceNcstMissingCategoryKeepsSentinel(t *testing.T) {
	reading := newReading()
	reduceNcst([]kmaItem{{Category: "T1H", ObsrValue: "3.2"}}, &reading)

	// 응답에 없는 카테고리는 null이 아니라 정확히 "-"로 남아야 함
	if reading.Humidity != Missing {
		t.Errorf("Humidity = %q, want %q", reading.Humidity, Missing)
	}
	if reading.RainType != Missing {
		t.Errorf("RainType = %q, want %q", reading.RainType, Missing)
	}
}

func TestReduceFcstSkyPrefersLatestTimeOfTargetDate(t *testing.T) {
	reading := newReading()
	reduceFcst([]kmaItem{
		{Category: "SKY", FcstDate: "20240306", FcstTime: "0900", FcstValue: "4"}, // 다음날 값 먼저
		{Category: "SKY", FcstDate: "20240305", FcstTime: "0600", FcstValue: "1"},
		{Category: "SKY", FcstDate: "20240305", FcstTime: "1500", FcstValue: "3"},
		{Category: "SKY", FcstDate: "20240305", FcstTime: "0900", FcstValue: "2"},
	}, "20240305", "20240306", &reading)

	if reading.Sky != "3" {
		t.Errorf("Sky = %q, want 3 (대상일의 가장 늦은 시각)", reading.Sky)
	}
}

func TestReduceFcstSkyFallsBackToTomorrow(t *testing.T) {
	reading := newReading()
	reduceFcst([]kmaItem{
		{Category: "SKY", FcstDate: "20240306", FcstTime: "0300", FcstValue: "4"},
	}, "20240305", "20240306", &reading)

	if reading.Sky != "4" {
		t.Errorf("Sky = %q, want 4", reading.Sky)
	}
}

func TestReduceFcstTemperatureBounds(t *testing.T) {
	reading := newReading()
	reduceFcst([]kmaItem{
		{Category: "TMN", FcstDate: "20240306", FcstValue: "-5.0"}, // 다음날 후보가 먼저 나옴
		{Category: "TMN", FcstDate: "20240305", FcstValue: "-1.0"}, // 대상일 정확 일치가 이김
		{Category: "TMX", FcstDate: "20240306", FcstValue: "11.0"}, // 대상일 값이 없으면 후보 사용
	}, "20240305", "20240306", &reading)

	if reading.Tmn != "-1.0" {
		t.Errorf("Tmn = %q, want -1.0", reading.Tmn)
	}
	if reading.Tmx != "11.0" {
		t.Errorf("Tmx = %q, want 11.0", reading.Tmx)
	}
}

func TestReduceFcstAbsentCategoriesKeepSentinel(t *testing.T) {
	reading := newReading()
	reduceFcst(nil, "20240305", "20240306", &reading)

	if reading.Sky != Missing || reading.Tmn != Missing || reading.Tmx != Missing {
		t.Errorf("got %+v, want all %q", reading, Missing)
	}
}
