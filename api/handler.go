package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"sched-project/config"
	"sched-project/internal/requests"
	"sched-project/internal/responses"
	"sched-project/internal/schedulers"
	"sched-project/pkg/log"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

// RegisterRoutes wires the scheduler endpoints under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(&request)
	if err != nil {
		s.logger.Error("fcfs schedule failed", log.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleShortestJobFirst(&request)
	if err != nil {
		s.logger.Error("sjf schedule failed", log.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	results := make(map[string]responses.ScheduleResponse, 2)
	for _, schedule := range []func(*requests.ScheduleRequests) (responses.ScheduleResponse, error){
		schedulers.ScheduleFirstComeFirstServe,
		schedulers.ScheduleShortestJobFirst,
	} {
		response, err := schedule(&request)
		if err != nil {
			s.logger.Error("schedule failed", log.ErrAttr(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
		}
		results[response.Algorithm] = response
	}

	return ctx.JSON(results)
}
