package handlers

import (
	"context"
	"errors"
	"net/http"

	"ib-compliance/internal/models"
	"ib-compliance/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RiskStore is the risk register persistence; *store.Risks implements it.
type RiskStore interface {
	Create(ctx context.Context, r *models.Risk) error
	List(ctx context.Context, status models.RiskStatus) ([]models.Risk, error)
	Get(ctx context.Context, id string) (models.Risk, error)
	Update(ctx context.Context, id string, p models.RiskPatch) (models.Risk, error)
	Delete(ctx context.Context, id string) error
}

var _ RiskStore = (*store.Risks)(nil)

type Handler struct {
	engine Engine
	risks  RiskStore
	log    *zap.Logger
}

func New(engine Engine, risks RiskStore, log *zap.Logger) *Handler {
	return &Handler{engine: engine, risks: risks, log: log}
}

// fail: единая точка перевода ошибок движка в HTTP-ответ
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
	case errors.Is(err, models.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные", "details": err.Error()})
	case errors.Is(err, models.ErrStoreUnavailable):
		h.log.Error("store unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Хранилище недоступно"})
	default:
		h.log.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Health: проверка живости сервиса
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
