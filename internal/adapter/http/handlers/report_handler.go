package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"barbearia_matheus/internal/usecase"
	"barbearia_matheus/internal/utils"
	"barbearia_matheus/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler backs the admin dashboard and the reports screen.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Summary returns the default dashboard metrics (last 30 days).
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SummaryByPeriod returns metrics for ?period=day|week|month or an explicit
// ?start=YYYY-MM-DD&end=YYYY-MM-DD window.
func (h *ReportHandler) SummaryByPeriod(c *gin.Context) {
	start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	summary, err := h.usecase.SummaryByPeriod(c.Request.Context(), c.Query("period"), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) TopClients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	top, err := h.usecase.TopClients(c.Request.Context(), limit)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, top)
}

func (h *ReportHandler) RevenueChart(c *gin.Context) {
	start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	points, err := h.usecase.RevenueChart(c.Request.Context(), c.Query("period"), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *ReportHandler) RecentActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	activities, err := h.usecase.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, activities)
}

// ExportCSV streams the window's attendances as a CSV download.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	data, err := h.usecase.ExportCSV(c.Request.Context(), c.Query("period"), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("attendances-%s.csv", utils.RecifeDate(time.Now()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// reportWindow parses the optional explicit date range. Both bounds must be
// given together; end is exclusive and bumped by one day so "end=2026-08-10"
// includes the whole of that day.
func reportWindow(c *gin.Context) (time.Time, time.Time, bool) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw == "" && endRaw == "" {
		return time.Time{}, time.Time{}, true
	}

	invalid := pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "start and end must both be YYYY-MM-DD", http.StatusBadRequest)
	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		c.JSON(invalid.HTTPStatus, invalid.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil || end.Before(start) {
		c.JSON(invalid.HTTPStatus, invalid.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	return start, end.Add(24 * time.Hour), true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Period must be day, week or month", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
