package domain

// AnalysisMeta describes the analysis run itself.
type AnalysisMeta struct {
	ReportID      string `json:"report_id"`
	Source        string `json:"source"` // CSV or XLSX, from the filename
	Mode          string `json:"mode"`   // always "manual": one-shot batch analysis
	Period        string `json:"period"`
	PeriodStart   string `json:"period_start"` // ISO calendar day
	PeriodEnd     string `json:"period_end"`   // ISO calendar day
	RowsProcessed int    `json:"rows_processed"`
	HasAnomalies  bool   `json:"has_anomalies"`
}

// AnalysisResult is the complete outcome of one batch analysis. Assembled
// once per request, never persisted, never mutated afterwards.
type AnalysisResult struct {
	Metrics       MetricsSnapshot         `json:"metrics"`
	Top5          []ProductRankEntry      `json:"top5"`
	Anomalies     []AnomalyEvent          `json:"anomalies"`
	PlatformStats map[string]PlatformStat `json:"platform_stats"`
	Tips          []string                `json:"tips"`
	ChartPNG      []byte                  `json:"-"` // opaque image, base64-encoded only at the transport boundary
	Meta          AnalysisMeta            `json:"meta"`
}
