package css

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"phiCalc/internal/api/http/respond"
	"phiCalc/internal/domain"
	"phiCalc/internal/pkg/cidutil"
	"phiCalc/internal/pkg/golden"
	"phiCalc/internal/ports"
	"phiCalc/internal/usecase/stylesheet"
)

const (
	contentTypeCSS = "text/css; charset=utf-8"
	maxBodyBytes   = 1 << 20
)

// TokenSource отдаёт текущие токены таблицы стилей (файл может перечитываться на лету).
type TokenSource interface {
	Current() domain.Tokens
}

// Controller — маршруты готового CSS: таблица стилей по токенам и тема.
type Controller struct {
	phi    *golden.PowerCache
	tokens TokenSource
	uc     ports.IScaleUseCase
	log    *slog.Logger
}

// New создаёт контроллер. tokens — источник токенов для GET /api/v1/css.
func New(phi *golden.PowerCache, tokens TokenSource, uc ports.IScaleUseCase, log *slog.Logger) *Controller {
	return &Controller{phi: phi, tokens: tokens, uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/css", c.sheet)
	api.GET("/theme.css", c.theme)
	api.POST("/theme.css", c.theme)
}

// @Summary Таблица стилей по токенам
// @Description Переменные --phi*, шкалы, контексты, clamp и тема. ETag — CID содержимого.
// @Tags css
// @Produce text/css
// @Success 200 {string} string
// @Success 304
// @Router /api/v1/css [get]
func (c *Controller) sheet(ctx *gin.Context) {
	css, err := stylesheet.Build(c.phi, c.tokens.Current())
	if err != nil {
		respond.Error(ctx, c.log, "stylesheet build failed", err)
		return
	}
	c.writeCSS(ctx, css)
}

// @Summary CSS темы (палитра и радиусы)
// @Description GET — тема по умолчанию, POST — тело JSON с параметрами темы. Проходит через кэш и историю.
// @Tags css
// @Accept json
// @Produce text/css
// @Success 200 {string} string
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/theme.css [post]
func (c *Controller) theme(ctx *gin.Context) {
	var body []byte
	if ctx.Request.Method == http.MethodPost {
		b, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBodyBytes))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, respond.ErrorResponse{Error: "invalid request: " + err.Error()})
			return
		}
		body = b
	}

	op, err := c.uc.Compute(ctx.Request.Context(), domain.KindTheme, body)
	if err != nil {
		respond.Error(ctx, c.log, "theme compute failed", err)
		return
	}
	var theme golden.Theme
	if err := json.Unmarshal([]byte(op.Result), &theme); err != nil {
		respond.Error(ctx, c.log, "theme decode failed", fmt.Errorf("decode theme: %w", err))
		return
	}
	c.writeCSS(ctx, theme.CSS())
}

// writeCSS отдаёт CSS с ETag; совпавший If-None-Match даёт 304.
func (c *Controller) writeCSS(ctx *gin.Context, css string) {
	etag, err := cidutil.ETag([]byte(css))
	if err != nil {
		respond.Error(ctx, c.log, "etag failed", err)
		return
	}
	ctx.Header("ETag", etag)
	ctx.Header("Cache-Control", "public, max-age=300")
	if etagMatch(ctx.GetHeader("If-None-Match"), etag) {
		ctx.Status(http.StatusNotModified)
		return
	}
	ctx.Data(http.StatusOK, contentTypeCSS, []byte(css))
}

// etagMatch — слабое сравнение для If-None-Match: список через запятую, префикс W/ и "*".
func etagMatch(header, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == want {
			return true
		}
	}
	return false
}
