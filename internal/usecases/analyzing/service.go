package analyzing

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dashly/sales-analytics-api/internal/config"
	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/internal/ingest"
	"github.com/dashly/sales-analytics-api/internal/visualization"
	"github.com/dashly/sales-analytics-api/pkg/log"
	"github.com/dashly/sales-analytics-api/pkg/utils"
)

// AnalyzeInput is one self-contained analysis request.
type AnalyzeInput struct {
	Content     []byte
	Filename    string
	Period      string
	CustomStart string
	CustomEnd   string
}

// Analyzer runs one batch analysis over an uploaded sales export.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error)
}

// Service orchestrates the pipeline: decode → normalize → resolve windows →
// metrics / ranking / anomalies / platform stats → tips → chart → result.
// Every request owns its dataset; the service keeps no mutable state.
type Service struct {
	cfg        config.Analysis
	reader     ingest.TableReader
	normalizer *ingest.Normalizer
	visualizer visualization.Visualizer
}

// NewService wires the pipeline with its collaborators.
func NewService(cfg config.Analysis, reader ingest.TableReader, visualizer visualization.Visualizer) *Service {
	return &Service{
		cfg:        cfg,
		reader:     reader,
		normalizer: ingest.NewNormalizer(cfg.DefaultCommission),
		visualizer: visualizer,
	}
}

func (s *Service) AnalyzeFile(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error) {
	logger := log.ForContext(ctx)

	table, err := s.reader.ReadTable(input.Content, input.Filename)
	if err != nil {
		return nil, err
	}

	dataset, err := s.normalizer.Normalize(table)
	if err != nil {
		return nil, err
	}

	window, err := resolveWindow(dataset, input.Period, input.CustomStart, input.CustomEnd)
	if err != nil {
		return nil, err
	}

	currRows := dataset.Select(window)
	prevRows := dataset.Select(window.Previous())

	curr, err := calcMetrics(currRows)
	if err != nil {
		return nil, err
	}

	// The previous window is optional: without rows there is simply no
	// comparison baseline and every delta stays nil.
	var prev *domain.MetricsSnapshot
	if len(prevRows) > 0 {
		prevMetrics, err := calcMetrics(prevRows)
		if err != nil {
			return nil, err
		}
		prev = &prevMetrics
	}

	applyDeltas(&curr, prev)

	topCurr := topProducts(currRows, s.cfg.TopSize)
	var topPrev []domain.ProductRankEntry
	if len(prevRows) > 0 {
		topPrev = topProducts(prevRows, s.cfg.TopSize)
	}

	anomalies := detectAnomalies(currRows, s.cfg.AnomalyThreshold)
	platforms := platformStats(currRows)

	tips := generateTips(tipSignals{
		Curr:      curr,
		Prev:      prev,
		TopCurr:   topCurr,
		TopPrev:   topPrev,
		Anomalies: anomalies,
		Platforms: platforms,
	})

	chart, err := s.visualizer.RenderDashboard(currRows, &curr)
	if err != nil {
		return nil, errors.Wrap(err, "rendering chart")
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating report id")
	}

	logger.WithFields(log.Fields{
		"report_id":    reportID,
		"period":       input.Period,
		"period_start": window.Start.Format(time.DateOnly),
		"period_end":   window.End.Format(time.DateOnly),
		"rows":         dataset.Len(),
		"anomalies":    len(anomalies),
	}).Info("analyzing: analysis completed")

	return &domain.AnalysisResult{
		Metrics:       curr,
		Top5:          topCurr,
		Anomalies:     anomalies,
		PlatformStats: platforms,
		Tips:          tips,
		ChartPNG:      chart,
		Meta: domain.AnalysisMeta{
			ReportID:      reportID,
			Source:        sourceFromFilename(input.Filename),
			Mode:          "manual",
			Period:        input.Period,
			PeriodStart:   window.Start.Format(time.DateOnly),
			PeriodEnd:     window.End.Format(time.DateOnly),
			RowsProcessed: dataset.Len(),
			HasAnomalies:  len(anomalies) > 0,
		},
	}, nil
}

func sourceFromFilename(filename string) string {
	name := strings.ToLower(filename)
	if strings.HasSuffix(name, ".xls") || strings.HasSuffix(name, ".xlsx") {
		return "XLSX"
	}
	return "CSV"
}
