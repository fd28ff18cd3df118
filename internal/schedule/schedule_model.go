package schedule

// Milestones는 학사일정에서 추출한 주요 학기 기준일입니다.
// 키가 없으면 "아직 공지되지 않음"을 뜻하며 에러가 아닙니다.
// 매 요청마다 새로 만들어지며 어디에도 저장되지 않습니다.
type Milestones map[string]string

// Milestones의 키 (응답 JSON의 키와 동일)
const (
	KeyFirstStart  = "first_start"  // 제1학기 개강일
	KeyFirstEnd    = "first_end"    // 제1학기 기말시험 종료일
	KeySecondStart = "second_start" // 제2학기 개강일
	KeySecondEnd   = "second_end"   // 제2학기 기말시험 종료일
)
