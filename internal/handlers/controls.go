package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ib-compliance/internal/catalog"
	"ib-compliance/internal/compliance"
	"ib-compliance/internal/models"

	"github.com/gin-gonic/gin"
)

// Engine is the subset of *compliance.Engine the handlers call.
type Engine interface {
	Domains() catalog.Taxonomy
	ListControls(ctx context.Context) []models.Control
	ListControlsByDomain(ctx context.Context, domainID string) []models.Control
	ListControlsByStatus(ctx context.Context, status models.ControlStatus) []models.Control
	GetControl(ctx context.Context, id string) (models.Control, error)
	UpdateControl(ctx context.Context, id string, p models.ControlPatch) (models.Control, error)
	OverallStats(ctx context.Context) compliance.OverallStats
	DomainStatsOrdered(ctx context.Context) []compliance.DomainStats
}

var _ Engine = (*compliance.Engine)(nil)

const dateLayout = "2006-01-02"

// СПИСОК МЕР

func (h *Handler) ListControls(c *gin.Context) {
	domain := strings.TrimSpace(c.Query("domain"))
	status := strings.TrimSpace(c.Query("status"))

	if domain != "" {
		if _, ok := h.engine.Domains().Lookup(domain); !ok {
			badRequest(c, "Неизвестный домен")
			return
		}
	}
	if status != "" && !models.ControlStatus(status).Valid() {
		badRequest(c, "Некорректный статус")
		return
	}

	var controls []models.Control
	switch {
	case domain != "" && status != "":
		for _, ctl := range h.engine.ListControlsByDomain(c.Request.Context(), domain) {
			if ctl.Status == models.ControlStatus(status) {
				controls = append(controls, ctl)
			}
		}
		if controls == nil {
			controls = []models.Control{}
		}
	case domain != "":
		controls = h.engine.ListControlsByDomain(c.Request.Context(), domain)
	case status != "":
		controls = h.engine.ListControlsByStatus(c.Request.Context(), models.ControlStatus(status))
	default:
		controls = h.engine.ListControls(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{"controls": controls, "count": len(controls)})
}

func (h *Handler) GetControl(c *gin.Context) {
	ctl, err := h.engine.GetControl(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl)
}

// РЕДАКТИРОВАНИЕ МЕРЫ

type controlPatchRequest struct {
	Status             *string `json:"status" binding:"omitempty,control_status"`
	ImplementationDate *string `json:"implementation_date" binding:"omitempty,datetime=2006-01-02"`
	Responsible        *string `json:"responsible" binding:"omitempty,max=255"`
	Evidence           *string `json:"evidence"`
	Notes              *string `json:"notes"`
}

func (r controlPatchRequest) patch() (models.ControlPatch, error) {
	var p models.ControlPatch
	if r.Status != nil {
		s := models.ControlStatus(*r.Status)
		p.Status = &s
	}
	if r.ImplementationDate != nil {
		t, err := time.Parse(dateLayout, *r.ImplementationDate)
		if err != nil {
			return p, err
		}
		p.ImplementationDate = &t
	}
	if r.Responsible != nil {
		v := strings.TrimSpace(*r.Responsible)
		p.Responsible = &v
	}
	p.Evidence = r.Evidence
	p.Notes = r.Notes
	return p, nil
}

func (h *Handler) UpdateControl(c *gin.Context) {
	var req controlPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Некорректные данные: "+err.Error())
		return
	}

	p, err := req.patch()
	if err != nil {
		badRequest(c, "Некорректная дата внедрения")
		return
	}

	ctl, err := h.engine.UpdateControl(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ctl)
}

// ДОМЕНЫ И СТАТИСТИКА

func (h *Handler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"domains":  h.engine.Domains(),
		"total":    h.engine.Domains().Total(),
		"statuses": models.ControlStatuses,
	})
}

func (h *Handler) OverallStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.OverallStats(c.Request.Context()))
}

func (h *Handler) DomainStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"domains": h.engine.DomainStatsOrdered(c.Request.Context())})
}
