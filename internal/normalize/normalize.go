// Package normalize maps provider-specific raw transaction records into the
// canonical Transaction shape. Each provider contributes a pure-data field
// mapping; adding a provider means adding a mapping, not touching shared logic.
package normalize

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/apperrors"
	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// dateLayouts are the date formats accepted from provider APIs, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalizer converts batches of raw provider records into canonical
// transactions using the mapping registered for each provider tag.
type Normalizer struct {
	mappings map[string]Mapping
}

// New creates a Normalizer with the built-in provider mappings.
func New() *Normalizer {
	return &Normalizer{mappings: builtinMappings()}
}

// Register adds or replaces the mapping for a provider tag.
func (n *Normalizer) Register(provider string, m Mapping) {
	n.mappings[provider] = m
}

// Providers returns the registered provider tags.
func (n *Normalizer) Providers() []string {
	providers := make([]string, 0, len(n.mappings))
	for tag := range n.mappings {
		providers = append(providers, tag)
	}
	return providers
}

// Supports reports whether a mapping is registered for the provider tag.
func (n *Normalizer) Supports(provider string) bool {
	_, ok := n.mappings[provider]
	return ok
}

// Normalize converts a batch of raw records for one provider. The mapping is
// resolved once per batch. Records with an unparseable date or amount are
// dropped and reported as RecordErrors; a bad record never aborts the batch.
// Missing optional fields default to empty values.
func (n *Normalizer) Normalize(provider string, raws []model.RawTransaction) ([]model.Transaction, []model.RecordError, error) {
	mapping, ok := n.mappings[provider]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, provider)
	}

	transactions := make([]model.Transaction, 0, len(raws))
	recordErrors := []model.RecordError{}

	for i, raw := range raws {
		tx, recErr := normalizeRecord(mapping, provider, raw)
		if recErr != nil {
			recErr.Index = i
			recordErrors = append(recordErrors, *recErr)
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, recordErrors, nil
}

// Denormalize re-serializes a canonical transaction back into the provider's
// field names. Only fields with a defined path are written; amount, date, and
// description round-trip exactly for RFC3339-dated records.
func (n *Normalizer) Denormalize(provider string, tx model.Transaction) (model.RawTransaction, error) {
	mapping, ok := n.mappings[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedProvider, provider)
	}

	raw := model.RawTransaction{}
	setPath(raw, mapping.ID, tx.ID)
	setPath(raw, mapping.Date, tx.Date.Format(time.RFC3339))
	setPath(raw, mapping.Amount, tx.Amount)
	setPath(raw, mapping.Currency, tx.Currency)
	setPath(raw, mapping.Description, tx.Description)
	if tx.Merchant != "" {
		setPath(raw, mapping.Merchant, tx.Merchant)
	}
	if tx.Type != "" {
		setPath(raw, mapping.Type, tx.Type)
	}
	return raw, nil
}

func normalizeRecord(m Mapping, provider string, raw model.RawTransaction) (model.Transaction, *model.RecordError) {
	dateStr := stringAt(raw, m.Date)
	if dateStr == "" {
		return model.Transaction{}, &model.RecordError{Field: "date", Reason: "missing date"}
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return model.Transaction{}, &model.RecordError{Field: "date", Reason: err.Error()}
	}

	amount, err := floatAt(raw, m.Amount)
	if err != nil {
		return model.Transaction{}, &model.RecordError{Field: "amount", Reason: err.Error()}
	}

	return model.Transaction{
		ID:          stringAt(raw, m.ID),
		Date:        date,
		Amount:      amount,
		Currency:    stringAt(raw, m.Currency),
		Description: stringAt(raw, m.Description),
		Merchant:    stringAt(raw, m.Merchant),
		Type:        stringAt(raw, m.Type),
		Category:    stringAt(raw, m.Category),
		Source:      provider,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// lookup walks a nested path through a raw record. A nil path or a missing
// intermediate object yields nil.
func lookup(raw model.RawTransaction, path []string) any {
	if len(path) == 0 {
		return nil
	}
	var current any = map[string]any(raw)
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

func stringAt(raw model.RawTransaction, path []string) string {
	switch v := lookup(raw, path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func floatAt(raw model.RawTransaction, path []string) (float64, error) {
	switch v := lookup(raw, path).(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable amount %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("amount has type %T, want number", v)
	}
}

// setPath writes a value into a nested map, creating intermediate objects.
func setPath(raw model.RawTransaction, path []string, value any) {
	if len(path) == 0 {
		return
	}
	current := map[string]any(raw)
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
