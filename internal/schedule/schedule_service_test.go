package schedule

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func newDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	return doc
}

func calendarItem(date, event string) string {
	return `<li><p class="list-date">` + date + `</p><p class="list-content">` + event + `</p></li>`
}

func TestMilestoneDateRangePolicy(t *testing.T) {
	tests := []struct {
		name     string
		dateText string
		segment  rangeSegment
		want     string
	}{
		{"개강은 범위의 시작일", "03.02(월) ~ 03.06(금)", firstSegment, "03.02(월)"},
		{"기말시험은 범위의 종료일", "06.15(월) ~ 06.20(토)", lastSegment, "06.20(토)"},
		{"범위가 아니면 그대로 (first)", "03.02(월)", firstSegment, "03.02(월)"},
		{"범위가 아니면 그대로 (last)", "06.20(토)", lastSegment, "06.20(토)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := milestoneDate(tt.dateText, tt.segment); got != tt.want {
				t.Errorf("milestoneDate(%q) = %q, want %q", tt.dateText, got, tt.want)
			}
		})
	}
}

func TestParseMilestones(t *testing.T) {
	html := `<div class="wrap-contents"><ul>` +
		calendarItem("03.02(월) ~ 03.06(금)", "제1학기 개강") +
		calendarItem("06.15(월) ~ 06.20(토)", "제1학기 기말시험") +
		calendarItem("09.01(월)", "제2학기 개강") +
		calendarItem("12.14(월) ~ 12.19(토)", "제2학기 기말시험") +
		calendarItem("05.05(화)", "어린이날 휴무") + // 무관한 항목은 무시
		`</ul></div>`

	milestones := parseMilestones(newDoc(t, html))

	want := Milestones{
		KeyFirstStart:  "03.02(월)",
		KeyFirstEnd:    "06.20(토)",
		KeySecondStart: "09.01(월)",
		KeySecondEnd:   "12.19(토)",
	}
	if len(milestones) != len(want) {
		t.Fatalf("got %d milestones, want %d: %v", len(milestones), len(want), milestones)
	}
	for key, wantDate := range want {
		if milestones[key] != wantDate {
			t.Errorf("milestones[%q] = %q, want %q", key, milestones[key], wantDate)
		}
	}
}

func TestParseMilestonesMissingContainer(t *testing.T) {
	milestones := parseMilestones(newDoc(t, `<div class="other"><li>아무거나</li></div>`))
	if len(milestones) != 0 {
		t.Errorf("got %v, want empty milestones", milestones)
	}
}

func TestParseMilestonesMismatchedNodeLists(t *testing.T) {
	// 날짜 2개, 내용 1개 — 짧은 쪽까지만 처리하고 패닉하지 않아야 함
	html := `<div class="wrap-contents"><ul><li>` +
		`<p class="list-date">03.02(월)</p><p class="list-date">03.03(화)</p>` +
		`<p class="list-content">제1학기 개강</p>` +
		`</li></ul></div>`

	milestones := parseMilestones(newDoc(t, html))

	if milestones[KeyFirstStart] != "03.02(월)" {
		t.Errorf("milestones[first_start] = %q, want %q", milestones[KeyFirstStart], "03.02(월)")
	}
}

func TestParseMilestonesNotPublishedYet(t *testing.T) {
	// 2학기 일정이 아직 없으면 해당 키가 없어야 함 (에러 아님)
	html := `<div class="wrap-contents"><ul>` +
		calendarItem("03.02(월)", "제1학기 개강") +
		`</ul></div>`

	milestones := parseMilestones(newDoc(t, html))

	if _, ok := milestones[KeySecondStart]; ok {
		t.Error("second_start should be absent when not published")
	}
	if milestones[KeyFirstStart] != "03.02(월)" {
		t.Errorf("milestones[first_start] = %q, want %q", milestones[KeyFirstStart], "03.02(월)")
	}
}
