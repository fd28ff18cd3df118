package notice

// Notice는 게시판 글 한 건입니다.
type Notice struct {
	Date  string `json:"date"`  // 게시일 (YYYY.MM.DD)
	Title string `json:"title"` // 제목. 새 글이면 " (NEW)"가 붙습니다.
	Link  string `json:"link"`  // 절대 URL
}
