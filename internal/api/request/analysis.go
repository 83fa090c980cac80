package request

import "github.com/jdevries/Banking-Insights-Backend/internal/model"

// AnalyzeBatchRequest carries a raw provider batch posted for analysis.
type AnalyzeBatchRequest struct {
	Provider     string                 `json:"provider"`
	Transactions []model.RawTransaction `json:"transactions"`
}

// ExportReportRequest asks for report files covering a fetched date range.
type ExportReportRequest struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Formats   []string `json:"formats"`
}
