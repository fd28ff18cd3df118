package timetable

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// TimetableHandler는 시간표 검색 핸들러입니다.
type TimetableHandler struct {
	service *Service
}

// NewTimetableHandler는 새 핸들러를 생성합니다.
func NewTimetableHandler(service *Service) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// HandleSearchTimetable은 'POST /api/timetable' 요청을 처리합니다.
func (h *TimetableHandler) HandleSearchTimetable(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warnf("시간표 검색 요청 파싱 실패: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "검색 요청 본문이 잘못되었습니다.",
		})
	}

	records, err := h.service.Search(c.UserContext(), req)
	if err != nil {
		log.Errorf("시간표 검색 실패: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(records)
}
