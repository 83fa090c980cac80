package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// csvHeader defines the transaction export columns, in order.
var csvHeader = []string{
	"id", "date", "amount", "currency", "description",
	"merchant", "category", "source", "is_recurring", "tags",
}

// WriteCSV writes the batch's transactions as a CSV table, one row per
// transaction.
func WriteCSV(path string, transactions []model.Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	for _, tx := range transactions {
		row := []string{
			tx.ID,
			tx.Date.Format(time.RFC3339),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Currency,
			tx.Description,
			tx.Merchant,
			tx.Category,
			tx.Source,
			strconv.FormatBool(tx.IsRecurring),
			strings.Join(tx.Tags, ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
