// Package export renders incident data into subscription deliverables and
// schedules recurring export runs.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
)

var csvHeaders = []string{
	"id", "title", "description", "category", "severity", "country",
	"date", "url", "source", "created_at",
}

// row is the flat export shape shared by CSV and JSON output
type row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Country     string `json:"country"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	CreatedAt   string `json:"created_at"`
}

func buildRow(article *model.Article) row {
	severity := ""
	if sev, ok := article.Severity(); ok {
		severity = string(sev)
	}
	return row{
		ID:          article.ID.String(),
		Title:       article.Title,
		Description: article.Description,
		Category:    article.Category,
		Severity:    severity,
		Country:     strings.Join(article.Country, "; "),
		Date:        article.PubDate.Format("2006-01-02"),
		URL:         article.Link,
		Source:      sourceOf(article.Link),
		CreatedAt:   article.PubDate.UTC().Format(time.RFC3339),
	}
}

// sourceOf derives a display source from the article link hostname
func sourceOf(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// Render serializes articles in the requested format
func Render(articles []*model.Article, format model.ExportFormat) ([]byte, error) {
	switch format {
	case model.FormatCSV:
		return renderCSV(articles)
	case model.FormatJSON:
		return renderJSON(articles)
	default:
		return nil, goerr.New("unsupported export format", goerr.V("format", format))
	}
}

func renderCSV(articles []*model.Article) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}
	for _, article := range articles {
		r := buildRow(article)
		record := []string{
			r.ID, r.Title, r.Description, r.Category, r.Severity,
			r.Country, r.Date, r.URL, r.Source, r.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV record",
				goerr.V("articleID", r.ID))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

func renderJSON(articles []*model.Article) ([]byte, error) {
	rows := make([]row, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, buildRow(article))
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal export rows")
	}
	return data, nil
}

// FormatFileSize renders a byte count as a human readable size
func FormatFileSize(size int) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
