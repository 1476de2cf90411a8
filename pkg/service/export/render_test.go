package export_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/service/export"
)

func sampleArticles() []*model.Article {
	return []*model.Article{
		{
			ID:          1,
			Title:       "Autonomous shuttle collides with barrier",
			Description: "A driverless shuttle failed to brake, injuring two passengers",
			Link:        "https://www.example.com/news/shuttle",
			PubDate:     time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
			Country:     []string{"Japan", "South Korea"},
			Category:    "Autonomous Vehicles/Accident",
		},
		{
			ID:          2,
			Title:       "Medical triage model misclassifies, patient dies",
			Description: "Hospital AI routed a critical patient to low priority",
			Link:        "https://health.example.org/triage",
			PubDate:     time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
			Country:     []string{"Germany"},
			Category:    "Healthcare/Fatality",
		},
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := export.Render(sampleArticles(), model.FormatCSV)
	gt.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	gt.NoError(t, err)
	gt.Array(t, records).Length(3)

	gt.Value(t, records[0]).Equal([]string{
		"id", "title", "description", "category", "severity", "country",
		"date", "url", "source", "created_at",
	})

	first := records[1]
	gt.Value(t, first[0]).Equal("1")
	gt.Value(t, first[4]).Equal("Accident")
	gt.Value(t, first[5]).Equal("Japan; South Korea")
	gt.Value(t, first[6]).Equal("2025-03-14")
	gt.Value(t, first[8]).Equal("example.com")

	second := records[2]
	gt.Value(t, second[4]).Equal("Fatality")
	gt.Value(t, second[8]).Equal("health.example.org")
	gt.Value(t, second[9]).Equal("2025-03-12T08:00:00Z")
}

func TestRenderJSON(t *testing.T) {
	data, err := export.Render(sampleArticles(), model.FormatJSON)
	gt.NoError(t, err)

	var rows []map[string]any
	gt.NoError(t, json.Unmarshal(data, &rows))
	gt.Array(t, rows).Length(2)
	gt.Value(t, rows[0]["title"]).Equal("Autonomous shuttle collides with barrier")
	gt.Value(t, rows[1]["severity"]).Equal("Fatality")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := export.Render(sampleArticles(), model.ExportFormat("xml"))
	gt.Error(t, err)
}

func TestFormatFileSize(t *testing.T) {
	gt.Value(t, export.FormatFileSize(512)).Equal("512 B")
	gt.Value(t, export.FormatFileSize(2048)).Equal("2.0 KB")
	gt.Value(t, export.FormatFileSize(3*1024*1024/2)).Equal("1.5 MB")
}
