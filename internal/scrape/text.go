package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CleanText는 선택 영역의 텍스트를 공백 정규화하여 반환합니다.
func CleanText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// BlockText는 선택 영역 안의 텍스트 노드들을 각각 정리한 뒤
// 줄바꿈으로 이어 붙입니다. 한 셀에 여러 메뉴가 <br>로 나뉘어
// 들어오는 경우 각 메뉴가 한 줄씩 유지됩니다.
func BlockText(sel *goquery.Selection) string {
	var lines []string
	for _, node := range sel.Nodes {
		collectTextLines(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectTextLines(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*lines = append(*lines, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextLines(c, lines)
	}
}
