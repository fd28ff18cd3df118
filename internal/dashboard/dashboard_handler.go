package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
)

// DashboardHandler는 캠퍼스 대시보드 핸들러입니다.
type DashboardHandler struct {
	service  *Service
	campuses map[string]config.Campus
}

// NewDashboardHandler는 새 핸들러를 생성합니다.
func NewDashboardHandler(service *Service, campuses map[string]config.Campus) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		campuses: campuses,
	}
}

// HandleGetSeoulData는 'GET /api/data' 요청을 처리합니다.
func (h *DashboardHandler) HandleGetSeoulData(c *fiber.Ctx) error {
	return h.campusData(c, "SEOUL")
}

// HandleGetGlobalData는 'GET /api/global/data' 요청을 처리합니다.
func (h *DashboardHandler) HandleGetGlobalData(c *fiber.Ctx) error {
	return h.campusData(c, "GLOBAL")
}

func (h *DashboardHandler) campusData(c *fiber.Ctx, campusKey string) error {
	campus := h.campuses[campusKey]
	return c.JSON(h.service.GetCampusData(c.UserContext(), campus))
}
