package weather

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
)

// WeatherHandler는 날씨 관련 핸들러입니다.
type WeatherHandler struct {
	service  *Service
	campuses map[string]config.Campus
}

// NewWeatherHandler는 새 핸들러를 생성합니다.
func NewWeatherHandler(service *Service, campuses map[string]config.Campus) *WeatherHandler {
	return &WeatherHandler{
		service:  service,
		campuses: campuses,
	}
}

// HandleGetWeather는 'GET /api/weather?campus=SEOUL|GLOBAL' 요청을 처리합니다.
func (h *WeatherHandler) HandleGetWeather(c *fiber.Ctx) error {
	campusKey := strings.ToUpper(c.Query("campus", "SEOUL"))
	campus, ok := h.campuses[campusKey]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(Result{
			Status:  "error",
			Message: "알 수 없는 캠퍼스입니다: " + campusKey,
		})
	}

	return c.JSON(h.service.Get(c.UserContext(), campus))
}
