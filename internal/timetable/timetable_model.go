package timetable

// SearchRequest는 강의 시간표 검색 요청입니다.
// Days("d1"~"d6")와 Times("t1"~"t12")는 선택한 칸만 "Y"로 보내는
// 희소 오버레이이며, 보내지 않은 칸은 모두 "N"으로 채워집니다.
type SearchRequest struct {
	Year      string            `json:"year"`
	Semester  string            `json:"semester"`
	Campus    string            `json:"campus"`
	DeptCode  string            `json:"dept_code"`
	Keyword   string            `json:"keyword"`
	Gubun     string            `json:"gubun"`
	Professor string            `json:"professor"`
	Days      map[string]string `json:"days"`
	Times     map[string]string `json:"times"`
}

// CourseRecord는 업스트림 강의 레코드를 안정된 필드명으로 투영한 것입니다.
// 업스트림에 없는 필드는 빈 문자열로 남습니다. (존재 검증 없음)
type CourseRecord struct {
	CourseID    string `json:"course_id"`
	Name        string `json:"name"`
	Professor   string `json:"professor"`
	TimeAndRoom string `json:"time_and_room"`
	Category    string `json:"category"`
	Credit      string `json:"credit"`
	Capacity    string `json:"capacity"` // "정원/수강인원" 문자열
	Note        string `json:"note"`
	Grade       string `json:"grade"`
}

// 업스트림 시스템의 강의 레코드 (필드명은 업스트림 그대로)
type upstreamCourse struct {
	Code      string `json:"gwamokcode"`
	Name      string `json:"gwamokname"`
	Professor string `json:"profname"`
	TimeRoom  string `json:"yoilandtime"`
	Category  string `json:"isugubun"`
	Credit    string `json:"hakjum"`
	Offered   string `json:"surupinwon"`
	Enrolled  string `json:"batinwon"`
	Note      string `json:"bigo"`
	Grade     string `json:"haknyun"`
}

func (u upstreamCourse) toRecord() CourseRecord {
	return CourseRecord{
		CourseID:    u.Code,
		Name:        u.Name,
		Professor:   u.Professor,
		TimeAndRoom: u.TimeRoom,
		Category:    u.Category,
		Credit:      u.Credit,
		Capacity:    u.Offered + "/" + u.Enrolled,
		Note:        u.Note,
		Grade:       u.Grade,
	}
}
