// Package service holds the domain logic shared between endpoints
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"zealvibe/catalog-api/model"
)

// AffirmationTemplate is the downloadable CSV template. Two sample
// rows so the expected shape is obvious
const AffirmationTemplate = "text,category,tags,active\n" +
	`"私は成功している","Success","自信;成功","true"` + "\n" +
	`"私は健康で幸せです","Health","健康;幸福","true"`

// ErrNoValidRows means the CSV contained no row with both a text and
// a category. Nothing gets inserted in that case
var ErrNoValidRows = errors.New("no valid rows found in CSV")

// ParseAffirmationCSV parses the import format: one header row, comma
// separated, one layer of surrounding double quotes stripped per value.
// Headers are matched case-insensitively against English and Japanese
// aliases; unknown headers are ignored. Rows missing text or category
// are dropped silently
func ParseAffirmationCSV(text string, now time.Time) []model.Affirmation {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var items []model.Affirmation

	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		for i := range values {
			values[i] = stripQuotes(strings.TrimSpace(values[i]))
		}

		item := model.Affirmation{
			IsActive:  true,
			ViewCount: 0,
			CreatedAt: now,
			UpdatedAt: now,
		}

		for i, header := range headers {
			if i >= len(values) {
				continue
			}
			value := values[i]

			switch strings.ToLower(header) {
			case "text", "テキスト":
				item.Text = value
			case "category", "カテゴリ":
				item.Category = value
			case "tags", "タグ":
				if value != "" {
					item.Tags = splitTags(value)
				}
			case "active", "isactive", "有効":
				item.IsActive = strings.ToLower(value) == "true" || value == "1" || value == "はい"
			}
		}

		if item.Text != "" && item.Category != "" {
			items = append(items, item)
		}
	}

	return items
}

// AffirmationInserter is the slice of the store the importer needs
type AffirmationInserter interface {
	Insert(ctx context.Context, item *model.Affirmation) (string, error)
}

// ImportAffirmations parses the CSV text and inserts every surviving
// row as an independent new record. Inserts run concurrently with no
// atomicity across rows, so a failure may leave some rows inserted.
// Returns the number of rows inserted on success
func ImportAffirmations(ctx context.Context, ins AffirmationInserter, text string) (int, error) {
	items := ParseAffirmationCSV(text, time.Now().UTC())
	if len(items) == 0 {
		return 0, ErrNoValidRows
	}

	errChan := make(chan error, len(items))

	for i := range items {
		go func(item model.Affirmation) {
			_, err := ins.Insert(ctx, &item)
			errChan <- err
		}(items[i])
	}

	var firstErr error
	for range items {
		if err := <-errChan; err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return 0, firstErr
	}

	return len(items), nil
}

// stripQuotes removes exactly one layer of surrounding double quotes.
// The import format has no escaped-quote or embedded-comma support
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func splitTags(s string) []string {
	parts := strings.Split(s, ";")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}

	return tags
}
