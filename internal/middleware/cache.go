package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// 중간 캐시가 약 60초간 응답을 재사용하고, 그 뒤 60초 동안은
// 백그라운드 재검증을 하며 오래된 응답을 내보내도록 하는 지시자.
// 프로세스 안에는 아무것도 캐시하지 않습니다.
const cacheDirective = "public, s-maxage=60, stale-while-revalidate=60"

// CacheControl은 읽기 엔드포인트에 Cache-Control 헤더를 붙이는
// 미들웨어입니다.
func CacheControl() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, cacheDirective)
		return err
	}
}
