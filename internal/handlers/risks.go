package handlers

import (
	"net/http"
	"strings"

	"ib-compliance/internal/metrics"
	"ib-compliance/internal/models"
	"ib-compliance/internal/risk"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// riskView: риск вместе с вычисленным уровнем (уровень не хранится в БД)
type riskView struct {
	models.Risk
	Level *risk.Level `json:"risk_level,omitempty"`
}

func (h *Handler) view(r models.Risk) riskView {
	v := riskView{Risk: r}
	lvl, err := risk.Classify(r.Impact, r.Probability)
	if err != nil {
		h.log.Warn("stored risk has out-of-range scores", zap.String("id", r.ID), zap.Error(err))
		return v
	}
	v.Level = &lvl
	return v
}

// ====== РЕЕСТР РИСКОВ ======

func (h *Handler) ListRisks(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !models.RiskStatus(status).Valid() {
		badRequest(c, "Некорректный статус риска")
		return
	}

	risks, err := h.risks.List(c.Request.Context(), models.RiskStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]riskView, 0, len(risks))
	for _, r := range risks {
		out = append(out, h.view(r))
	}
	c.JSON(http.StatusOK, gin.H{"risks": out, "count": len(out)})
}

type riskRequest struct {
	Name          string `json:"name" binding:"required,min=3,max=255"`
	Threat        string `json:"threat"`
	Vulnerability string `json:"vulnerability"`
	Impact        int    `json:"impact" binding:"required,min=1,max=5"`
	Probability   int    `json:"probability" binding:"required,min=1,max=5"`
	Status        string `json:"status" binding:"omitempty,risk_status"`
	Treatment     string `json:"treatment"`
	Responsible   string `json:"responsible" binding:"max=255"`
}

func (h *Handler) CreateRisk(c *gin.Context) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Некорректные данные: "+err.Error())
		return
	}

	r := models.Risk{
		Name:          strings.TrimSpace(req.Name),
		Threat:        strings.TrimSpace(req.Threat),
		Vulnerability: strings.TrimSpace(req.Vulnerability),
		Impact:        req.Impact,
		Probability:   req.Probability,
		Status:        models.RiskStatus(req.Status),
		Treatment:     strings.TrimSpace(req.Treatment),
		Responsible:   strings.TrimSpace(req.Responsible),
	}
	if err := h.risks.Create(c.Request.Context(), &r); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("risk created", zap.String("id", r.ID), zap.String("name", r.Name))
	c.JSON(http.StatusCreated, h.view(r))
}

func (h *Handler) GetRisk(c *gin.Context) {
	r, err := h.risks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(r))
}

type riskPatchRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=3,max=255"`
	Threat        *string `json:"threat"`
	Vulnerability *string `json:"vulnerability"`
	Impact        *int    `json:"impact" binding:"omitempty,min=1,max=5"`
	Probability   *int    `json:"probability" binding:"omitempty,min=1,max=5"`
	Status        *string `json:"status" binding:"omitempty,risk_status"`
	Treatment     *string `json:"treatment"`
	Responsible   *string `json:"responsible" binding:"omitempty,max=255"`
}

func (h *Handler) UpdateRisk(c *gin.Context) {
	var req riskPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Некорректные данные: "+err.Error())
		return
	}

	p := models.RiskPatch{
		Name:          req.Name,
		Threat:        req.Threat,
		Vulnerability: req.Vulnerability,
		Impact:        req.Impact,
		Probability:   req.Probability,
		Treatment:     req.Treatment,
		Responsible:   req.Responsible,
	}
	if req.Status != nil {
		s := models.RiskStatus(*req.Status)
		p.Status = &s
	}

	r, err := h.risks.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(r))
}

func (h *Handler) DeleteRisk(c *gin.Context) {
	if err := h.risks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RiskSummary: количество рисков по уровням
func (h *Handler) RiskSummary(c *gin.Context) {
	risks, err := h.risks.List(c.Request.Context(), "")
	if err != nil {
		h.fail(c, err)
		return
	}

	summary := risk.Summary(risks)
	for lvl, n := range summary {
		metrics.RisksByLevel.WithLabelValues(string(lvl)).Set(float64(n))
	}
	c.JSON(http.StatusOK, gin.H{"total": len(risks), "levels": summary})
}

// RiskMatrix: тепловая карта 5×5 для отображения
func (h *Handler) RiskMatrix(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matrix": risk.Matrix()})
}
