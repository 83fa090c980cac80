package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
	"github.com/jdevries/Banking-Insights-Backend/internal/report"
)

// Report formats supported by Export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ReportService writes analysis results to report files in the configured
// output directory.
type ReportService struct {
	outputDir string
}

// NewReportService creates a new ReportService writing into outputDir.
func NewReportService(outputDir string) *ReportService {
	return &ReportService{outputDir: outputDir}
}

// Export writes the analysis in each requested format and returns the paths
// of the written files. Filenames carry a timestamp and a short unique
// suffix so repeated exports never collide.
func (s *ReportService) Export(analysis model.Analysis, formats []string) ([]string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToWriteReport, err)
	}

	stamp := time.Now().Format("20060102_150405")
	suffix := uuid.NewString()[:8]

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := filepath.Join(s.outputDir, fmt.Sprintf("report_%s_%s.%s", stamp, suffix, format))
		var err error
		switch format {
		case FormatJSON:
			err = report.WriteJSON(path, analysis)
		case FormatCSV:
			err = report.WriteCSV(path, analysis.Transactions)
		default:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFormat, format)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToWriteReport, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
