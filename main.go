package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal" // (우아한 종료)
	"syscall"   // (우아한 종료)

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus" // Logrus 사용

	// 내부 패키지 임포트
	"github.com/ChoRockKim/Hufs-Clock-API/internal/config"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/dashboard"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/library"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/meal"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/middleware"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/notice"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/schedule"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/scrape"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/timetable"
	"github.com/ChoRockKim/Hufs-Clock-API/internal/weather"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "conf", "config.json", "설정 파일 경로")
	flag.Parse()

	// Configure File load
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Panic(err)
	}

	// 공용 외부 HTTP 클라이언트
	fetcher := scrape.NewFetcher()

	// 의존성 조립 (Dependency Injection)

	// Schedule / Notice / Meal (대시보드 구성 요소)
	scheduleService := schedule.NewService(fetcher, cfg.CalendarURL())
	noticeService := notice.NewService(fetcher, cfg.HufsDomain)
	mealService := meal.NewService(fetcher, cfg.CafeteriaURL())

	// Dashboard
	dashboardService := dashboard.NewService(scheduleService, noticeService, mealService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService, cfg.Campuses)

	// Library
	libraryService := library.NewService(fetcher)
	libraryHandler := library.NewLibraryHandler(libraryService, cfg.Campuses)

	// Weather
	weatherService := weather.NewService(fetcher, cfg)
	weatherHandler := weather.NewWeatherHandler(weatherService, cfg.Campuses)

	// Timetable
	timetableService := timetable.NewService(fetcher, cfg.TimetableURL)
	timetableHandler := timetable.NewTimetableHandler(timetableService)

	// Fiber 앱 생성
	app := fiber.New()
	app.Use(recover.New()) // (어떤 실패도 프로세스를 죽이지 않음)
	app.Use(cors.New())

	// 라우트(URL) 설정
	log.Info("라우트를 설정합니다...")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "HUFS Clock API is running."})
	})

	// 읽기 엔드포인트는 중간 캐시가 짧게 재사용하도록 헤더를 붙입니다.
	api := app.Group("/api", middleware.CacheControl())
	{
		api.Get("/data", dashboardHandler.HandleGetSeoulData)
		api.Get("/global/data", dashboardHandler.HandleGetGlobalData)
		api.Get("/library", libraryHandler.HandleGetSeats)
		api.Get("/weather", weatherHandler.HandleGetWeather)
	}

	// 사용자 대면 검색 (캐시 대상 아님)
	app.Post("/api/timetable", timetableHandler.HandleSearchTimetable)

	// 서버 시작 (우아한 종료 로직)
	go func() {
		log.Infof("HUFS Clock API 서버가 [::]:%s 포트에서 시작됩니다.", cfg.ServerPort)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
			log.Panicf("HTTP 서버 Listen 실패: %v", err)
		}
	}()

	// (종료 신호 대기)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("서버 종료 신호 수신...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("HTTP 서버 Shutdown 실패: %v", err)
	}

	log.Info("서버가 정상적으로 종료되었습니다.")
}
