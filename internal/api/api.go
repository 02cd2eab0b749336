// Package api exposes the compare service over HTTP for the counselor UI.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codermillat/wbe-uni-fee-compare/internal/compare"
	apperrors "github.com/codermillat/wbe-uni-fee-compare/internal/errors"
	"github.com/codermillat/wbe-uni-fee-compare/internal/fees"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
	"github.com/codermillat/wbe-uni-fee-compare/internal/report"
)

// Handler serves the counselor-facing JSON API.
type Handler struct {
	svc *compare.Service
	log *logger.Logger
}

func NewHandler(svc *compare.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log.WithModule("api")}
}

// Register mounts every API route under the given router group.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/universities", h.listUniversities)
	r.GET("/levels", h.listLevels)
	r.GET("/programs", h.filterPrograms)
	r.POST("/select", h.selectProgram)
	r.POST("/offer", h.exportOffer)
	r.GET("/compare", h.smartComparison)
}

func (h *Handler) listUniversities(c *gin.Context) {
	unis := h.svc.Universities()
	out := make([]gin.H, 0, len(unis))
	for _, u := range unis {
		out = append(out, gin.H{
			"id":            u.ID,
			"name":          u.Name,
			"shortName":     u.ShortName,
			"location":      u.Location,
			"accreditation": u.Accreditation,
			"programCount":  len(u.Programs),
		})
	}
	c.JSON(http.StatusOK, gin.H{"universities": out})
}

func (h *Handler) listLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"levels": h.svc.ListDegreeLevels()})
}

func (h *Handler) filterPrograms(c *gin.Context) {
	programs, fields := h.svc.FilterPrograms(c.Query("level"), c.Query("field"))
	if programs == nil {
		programs = []compare.ProgramRef{}
	}
	c.JSON(http.StatusOK, gin.H{
		"programs": programs,
		"fields":   fields,
	})
}

type selectRequest struct {
	UniversityID string `json:"universityId" binding:"required"`
	ProgramID    string `json:"programId" binding:"required"`
	Level        string `json:"level"`
	Field        string `json:"field"`
	// GPA only narrows which tiers are shown; the calculations themselves
	// never depend on it.
	GPA string `json:"gpa"`
}

func (h *Handler) selectProgram(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := h.svc.SelectProgram(req.UniversityID, req.ProgramID, req.Level, req.Field)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if gpa := parseOptionalGPA(req.GPA); gpa != nil {
		for _, calc := range sel.Calculations {
			calc.Tiers = fees.EligibleTiers(calc.Tiers, gpa)
			calc.Enhanced = fees.EligibleTiers(calc.Enhanced, gpa)
		}
	}
	c.JSON(http.StatusOK, sel)
}

type offerRequest struct {
	UniversityID string `json:"universityId" binding:"required"`
	ProgramID    string `json:"programId" binding:"required"`
	StudentName  string `json:"studentName"`
	// GPA and ScholarshipOverride arrive as strings so that blank and
	// non-numeric input degrade to "not provided" instead of a 400.
	GPA                 string `json:"gpa"`
	ScholarshipOverride string `json:"scholarshipOverride"`
}

func (h *Handler) exportOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := report.OfferOptions{
		StudentName:         req.StudentName,
		GPA:                 parseOptionalGPA(req.GPA),
		ScholarshipOverride: parseOptionalFloat(req.ScholarshipOverride),
	}
	msg, err := h.svc.ExportOffer(req.UniversityID, req.ProgramID, opts)
	if err != nil {
		h.renderError(c, err)
		return
	}
	// Counselors paste offers into chats; the reference id lets a later
	// conversation be tied back to the exported numbers.
	c.JSON(http.StatusOK, gin.H{
		"message":     msg,
		"referenceId": uuid.NewString(),
	})
}

func (h *Handler) smartComparison(c *gin.Context) {
	universityID := c.Query("universityId")
	programID := c.Query("programId")
	if universityID == "" || programID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "universityId and programId are required"})
		return
	}

	msg, err := h.svc.SmartComparison(
		universityID,
		programID,
		c.Query("level"),
		c.Query("field"),
		c.Query("studentName"),
		parseOptionalGPA(c.Query("gpa")),
	)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUniversityNotFound), errors.Is(err, apperrors.ErrProgramNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseOptionalFloat treats blank or malformed numeric input as absent.
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseOptionalGPA additionally treats values off the GPA scale as absent,
// so an impossible GPA never empties the tier list.
func parseOptionalGPA(s string) *float64 {
	v := parseOptionalFloat(s)
	if v == nil || *v < 0 || *v > fees.GPAScaleMax {
		return nil
	}
	return v
}
