package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dashly/sales-analytics-api/internal/config"
	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/internal/report"
	"github.com/dashly/sales-analytics-api/internal/usecases/analyzing"
	"github.com/dashly/sales-analytics-api/pkg/apiErrors"
	"github.com/dashly/sales-analytics-api/pkg/log"
	"github.com/dashly/sales-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var allowedPeriods = map[string]struct{}{
	domain.PeriodToday:  {},
	domain.PeriodWeek:   {},
	domain.PeriodMonth:  {},
	domain.PeriodAll:    {},
	domain.PeriodCustom: {},
}

// AnalyzeResponse is the transport shape of one analysis. The metrics block
// is flattened and the chart is base64-encoded here, at the boundary.
type AnalyzeResponse struct {
	Revenue           float64                        `json:"revenue"`
	Orders            int                            `json:"orders"`
	AvgCheck          float64                        `json:"avg_check"`
	Commission        float64                        `json:"commission"`
	Profit            float64                        `json:"profit"`
	RevenueChangePct  *float64                       `json:"revenue_change_pct"`
	OrdersChangePct   *float64                       `json:"orders_change_pct"`
	AvgCheckChangePct *float64                       `json:"avg_check_change_pct"`
	Top5              []domain.ProductRankEntry      `json:"top5"`
	Tips              []string                       `json:"tips"`
	Anomalies         []domain.AnomalyEvent          `json:"anomalies"`
	PlatformStats     map[string]domain.PlatformStat `json:"platform_stats"`
	ChartPNGBase64    string                         `json:"chart_png_base64"`
	TextReport        string                         `json:"text_report"`
	Meta              domain.AnalysisMeta            `json:"meta"`
}

// Analyze handles POST /v1/analyze: a multipart form with the export file,
// the period keyword and optional custom bounds.
func Analyze(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, cfg.Analysis.MaxUploadBytes)
		if err := r.ParseMultipartForm(cfg.Analysis.MaxUploadBytes); err != nil {
			logger.WithError(err).Warn("analyze: failed to parse multipart form")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Не удалось прочитать запрос — проверьте файл и его размер.", nil)
			return
		}

		period := strings.ToLower(strings.TrimSpace(r.FormValue("period")))
		if _, ok := allowedPeriods[period]; !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"period must be one of: today, week, month, all, custom", nil)
			return
		}

		if !middleware.IsPeriodAllowed(r.Context(), period) {
			logger.WithField("period", period).Info("analyze: period locked for caller's plan")
			apiErrors.WriteError(w, apiErrors.ErrFeatureLocked, "Feature locked: month/all are PRO", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Файл не получен.", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Warn("analyze: failed to read uploaded file")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Не удалось прочитать файл.", nil)
			return
		}

		result, err := service.AnalyzeFile(r.Context(), analyzing.AnalyzeInput{
			Content:     content,
			Filename:    header.Filename,
			Period:      period,
			CustomStart: r.FormValue("custom_start"),
			CustomEnd:   r.FormValue("custom_end"),
		})
		if err != nil {
			if domain.IsValidation(err) {
				logger.WithError(err).WithField("filename", header.Filename).
					Warn("analyze: rejected input")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("filename", header.Filename).
				Error("analyze: pipeline failure")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Внутренняя ошибка сервера.", nil)
			return
		}

		response := AnalyzeResponse{
			Revenue:           result.Metrics.Revenue,
			Orders:            result.Metrics.Orders,
			AvgCheck:          result.Metrics.AvgCheck,
			Commission:        result.Metrics.Commission,
			Profit:            result.Metrics.Profit,
			RevenueChangePct:  result.Metrics.RevenueChangePct,
			OrdersChangePct:   result.Metrics.OrdersChangePct,
			AvgCheckChangePct: result.Metrics.AvgCheckChangePct,
			Top5:              result.Top5,
			Tips:              result.Tips,
			Anomalies:         result.Anomalies,
			PlatformStats:     result.PlatformStats,
			ChartPNGBase64:    base64.StdEncoding.EncodeToString(result.ChartPNG),
			TextReport:        report.FormatText(result),
			Meta:              result.Meta,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("analyze: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
