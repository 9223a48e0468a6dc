package domain

import (
	"errors"
	"time"
)

// ErrUnknownKind возвращается, когда вид расчёта не поддерживается.
var ErrUnknownKind = errors.New("unknown kind")

// ErrInvalidParams возвращается, когда параметры расчёта не разбираются или неполны.
var ErrInvalidParams = errors.New("invalid params")

// Виды расчётов.
const (
	KindPhi          = "phi"
	KindPhiPrecise   = "phi_precise"
	KindSpacing      = "spacing"
	KindTypography   = "typography"
	KindContextScale = "context_scale"
	KindContextRatio = "context_ratio"
	KindContextUnit  = "context_unit"
	KindClamp        = "clamp"
	KindCSS          = "css"
	KindColors       = "colors"
	KindRectangle    = "rectangle"
	KindRadius       = "radius"
	KindTheme        = "theme"
)

// Kinds — все поддерживаемые виды в порядке документации.
var Kinds = []string{
	KindPhi, KindPhiPrecise, KindSpacing, KindTypography,
	KindContextScale, KindContextRatio, KindContextUnit,
	KindClamp, KindCSS, KindColors, KindRectangle, KindRadius, KindTheme,
}

// IsKnownKind сообщает, поддерживается ли вид.
func IsKnownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Operation — запись об одном расчёте шкалы.
// Params — канонический JSON параметров после подстановки умолчаний, Result — JSON результата.
type Operation struct {
	ID        int       `json:"id"`
	Kind      string    `json:"kind"`
	Params    string    `json:"params"`
	Result    string    `json:"result"`
	Cached    bool      `json:"cached"`
	Timestamp time.Time `json:"timestamp"`
}

// KindCount — число расчётов одного вида (аналитика).
type KindCount struct {
	Kind  string `json:"kind"`
	Count uint64 `json:"count"`
}
