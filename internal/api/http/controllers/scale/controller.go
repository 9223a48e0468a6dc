package scale

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"phiCalc/internal/api/http/middlewares"
	"phiCalc/internal/api/http/respond"
	"phiCalc/internal/domain"
	"phiCalc/internal/ports"
)

// maxParamsBytes — предел тела запроса с параметрами.
const maxParamsBytes = 1 << 20

// Controller — маршруты расчётов: compute, history, kinds, stats.
type Controller struct {
	uc    ports.IScaleUseCase
	stats ports.IOperationStats
	log   *slog.Logger
}

// New создаёт контроллер. stats == nil — аналитика не подключена, /stats отвечает 503.
func New(uc ports.IScaleUseCase, stats ports.IOperationStats, log *slog.Logger) *Controller {
	return &Controller{uc: uc, stats: stats, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/kinds", c.kinds)
	api.POST("/compute/:kind", c.compute)
	api.GET("/history", c.history)
	api.GET("/stats", c.statsByKind)
}

// @Summary Выполнить расчёт шкалы
// @Description Тело — JSON параметров вида (отсутствующие поля берут умолчания). Результат кэшируется и сохраняется в БД.
// @Tags scale
// @Accept json
// @Produce json
// @Param kind path string true "Вид расчёта"
// @Success 200 {object} OperationResponse
// @Failure 400 {object} respond.ErrorResponse "Неверные параметры"
// @Failure 404 {object} respond.ErrorResponse "Неизвестный вид"
// @Router /api/v1/compute/{kind} [post]
func (c *Controller) compute(ctx *gin.Context) {
	kind := ctx.Param("kind")
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxParamsBytes))
	if err != nil {
		c.log.Warn("compute read body failed", "error", err)
		ctx.JSON(http.StatusBadRequest, respond.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	op, err := c.uc.Compute(ctx.Request.Context(), kind, body)
	if err != nil {
		respond.Error(ctx, c.log, "compute failed", err)
		return
	}
	if op == nil {
		respond.Error(ctx, c.log, "compute failed", errors.New("empty result"))
		return
	}
	middlewares.ObserveCompute(op.Kind, op.Cached)
	ctx.JSON(http.StatusOK, toResponse(*op))
}

// @Summary История расчётов
// @Tags scale
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		respond.Error(ctx, c.log, "history failed", err)
		return
	}
	items := make([]OperationResponse, len(list))
	for i, op := range list {
		items[i] = toResponse(op)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

func (c *Controller) kinds(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, KindsResponse{Kinds: domain.Kinds})
}

// @Summary Число расчётов по видам (ClickHouse)
// @Tags scale
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} respond.ErrorResponse "Аналитика не подключена"
// @Router /api/v1/stats [get]
func (c *Controller) statsByKind(ctx *gin.Context) {
	if c.stats == nil {
		ctx.JSON(http.StatusServiceUnavailable, respond.ErrorResponse{Error: "analytics is not configured"})
		return
	}
	items, err := c.stats.CountByKind(ctx.Request.Context())
	if err != nil {
		respond.Error(ctx, c.log, "stats failed", err)
		return
	}
	if items == nil {
		items = []domain.KindCount{}
	}
	ctx.JSON(http.StatusOK, StatsResponse{Items: items})
}
