package library

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
)

// LibraryHandler는 도서관 좌석 현황 핸들러입니다.
type LibraryHandler struct {
	service  *Service
	campuses map[string]config.Campus
}

// NewLibraryHandler는 새 핸들러를 생성합니다.
func NewLibraryHandler(service *Service, campuses map[string]config.Campus) *LibraryHandler {
	return &LibraryHandler{
		service:  service,
		campuses: campuses,
	}
}

// HandleGetSeats는 'GET /api/library?campus=SEOUL|GLOBAL' 요청을 처리합니다.
func (h *LibraryHandler) HandleGetSeats(c *fiber.Ctx) error {
	campusKey := strings.ToUpper(c.Query("campus", "SEOUL"))
	campus, ok := h.campuses[campusKey]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "알 수 없는 캠퍼스입니다: " + campusKey,
		})
	}

	return c.JSON(h.service.Get(c.UserContext(), campusKey, campus))
}
