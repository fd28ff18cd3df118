package meal

import "time"

// weekWindow는 오늘이 속한 주의 월요일과 토요일을 반환합니다.
func weekWindow(today time.Time) (start, end time.Time) {
	offset := (int(today.Weekday()) + 6) % 7 // 월요일 기준 요일 오프셋
	start = today.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 5)
	return start, end
}

// monthWindow는 주간 범위를 학식 API가 요구하는 "이번 달 기준 일(day)"
// 쌍으로 바꿉니다. 학식 API는 한 번에 한 달만 이해하므로 주가 월 경계에
// 걸치면 이번 달 범위로 잘라냅니다.
func monthWindow(today, start, end time.Time) (first, last int) {
	startIn := sameMonth(start, today)
	endIn := sameMonth(end, today)

	switch {
	case startIn && endIn:
		// 주 전체가 이번 달 안에 있음
		return start.Day(), end.Day()
	case startIn:
		// 주의 끝이 다음 달로 넘어감 -> 이번 달 말일까지
		return start.Day(), lastDayOfMonth(today)
	case endIn:
		// 주의 시작이 지난 달 -> 1일부터
		return 1, end.Day()
	default:
		// 이번 달이 통째로 주 안에 들어 있는 경우
		return 1, lastDayOfMonth(today)
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
