package meal

// Item은 메뉴 한 건입니다. Name에는 한 끼에 여러 메뉴가 나올 때
// 줄바꿈이 섞여 있을 수 있습니다.
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"` // 가격 표기가 없으면 빈 문자열
}

// Slot은 식사 시간대(조식/중식/석식) 하나의 메뉴 목록입니다.
// 시간대는 있는데 파싱되는 메뉴가 없으면 Menus가 비어 있을 수 있습니다.
type Slot struct {
	Time  string `json:"time"`
	Menus []Item `json:"menus"`
}
