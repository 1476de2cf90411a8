package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpCtrl "github.com/aiwatch-dev/aiwatch/pkg/controller/http"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
	"github.com/aiwatch-dev/aiwatch/pkg/repository"
	"github.com/aiwatch-dev/aiwatch/pkg/service/chart"
	"github.com/aiwatch-dev/aiwatch/pkg/service/geo"
	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
)

func newTestServer(t *testing.T, repo interfaces.Repository) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	uc := &httpCtrl.UseCases{
		Statistics:    usecase.NewStatistics(repo),
		Articles:      usecase.NewArticles(repo),
		Reports:       usecase.NewReports(repo),
		Subscriptions: usecase.NewSubscriptions(repo),
		APIKeys:       usecase.NewAPIKeys(repo),
	}
	server := httpCtrl.NewServer(ctx, "127.0.0.1:0", uc, []string{"*"})

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func seedServerArticles(t *testing.T, repo interfaces.Repository) {
	t.Helper()
	ctx := context.Background()

	articles := []*model.Article{
		{ID: 1, Title: "Robotaxi hits pedestrian", Category: "Autonomous Vehicles/Fatality",
			Country: []string{"united states"}, PubDate: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Warehouse robot injures worker", Category: "Robotics/Accident",
			Country: []string{"japan"}, PubDate: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Second warehouse incident", Category: "Robotics/Fatality",
			Country: []string{"japan"}, PubDate: time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC)},
	}
	for _, a := range articles {
		gt.NoError(t, repo.SaveArticle(ctx, a))
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	gt.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	gt.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		gt.NoError(t, err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	gt.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	gt.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, repository.NewMemory())

	resp, err := http.Get(ts.URL + "/health")
	gt.NoError(t, err)
	gt.Equal(t, resp.StatusCode, http.StatusOK)

	var body map[string]string
	decodeBody(t, resp, &body)
	gt.Equal(t, body["status"], "healthy")
}

func TestStatisticsEndpoint(t *testing.T) {
	repo := repository.NewMemory()
	seedServerArticles(t, repo)
	ts := newTestServer(t, repo)

	t.Run("unfiltered", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/articles/statistics", map[string]any{
			"filters": map[string]any{},
		})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var body struct {
			Stats struct {
				TotalIncidents int `json:"total_incidents"`
				TotalDeaths    int `json:"total_deaths"`
				TotalAccidents int `json:"total_accidents"`
			} `json:"stats"`
			Counts   []model.CountryCount `json:"counts"`
			Articles []json.RawMessage    `json:"articles"`
			Markers  []geo.Marker         `json:"markers"`
			Chart    []chart.Slice        `json:"country_chart"`
		}
		decodeBody(t, resp, &body)
		gt.Equal(t, body.Stats.TotalIncidents, 3)
		gt.Equal(t, body.Stats.TotalDeaths, 2)
		gt.Equal(t, body.Stats.TotalAccidents, 1)
		gt.Equal(t, model.TotalCount(body.Counts), 3)
		gt.A(t, body.Articles).Length(3)

		gt.A(t, body.Markers).Length(2)
		for _, m := range body.Markers {
			gt.Equal(t, m.Size, 12.0)
		}
		gt.A(t, body.Chart).Length(2)
		gt.Equal(t, body.Chart[0], chart.Slice{Label: "Japan", Value: 2})
	})

	t.Run("legacy Death severity alias", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/articles/statistics", map[string]any{
			"filters": map[string]any{
				"severities": []string{"Death"},
			},
		})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var body struct {
			Counts []model.CountryCount `json:"counts"`
		}
		decodeBody(t, resp, &body)
		gt.Equal(t, model.TotalCount(body.Counts), 2)
	})

	t.Run("country filter", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/articles/statistics", map[string]any{
			"filters": map[string]any{
				"countries": []string{"japan"},
			},
		})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var body struct {
			Counts []model.CountryCount `json:"counts"`
		}
		decodeBody(t, resp, &body)
		gt.A(t, body.Counts).Length(1)
		gt.Equal(t, body.Counts[0].Country, "japan")
		gt.Equal(t, body.Counts[0].Count, 2)
	})
}

func TestArticleDetailEndpoint(t *testing.T) {
	repo := repository.NewMemory()
	seedServerArticles(t, repo)
	ts := newTestServer(t, repo)

	t.Run("detail with relevant articles", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/news/2")
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var body struct {
			Article          model.Article   `json:"article"`
			RelevantArticles []model.Article `json:"relevant_articles"`
		}
		decodeBody(t, resp, &body)
		gt.Equal(t, body.Article.ID, types.ArticleID(2))
		gt.A(t, body.RelevantArticles).Length(1)
		gt.Equal(t, body.RelevantArticles[0].ID, types.ArticleID(3))
	})

	t.Run("unknown article is 404", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/news/999")
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusNotFound)
	})

	t.Run("non-numeric ID is 400", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/news/abc")
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})
}

func TestReportEndpoints(t *testing.T) {
	repo := repository.NewMemory()
	ts := newTestServer(t, repo)

	submit := func(t *testing.T) types.ReportID {
		t.Helper()
		resp := postJSON(t, ts.URL+"/sources/manual", map[string]any{
			"title":       "Chatbot exposed personal data",
			"description": "A support bot replied with another user's records",
			"link":        "https://example.com/incident",
			"severity":    "Death",
			"date":        "2025-06-01",
			"country":     []string{"Germany"},
			"category":    "Chatbots",
		})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var body map[string]string
		decodeBody(t, resp, &body)
		gt.Equal(t, body["message"], "Report submitted successfully")

		listResp, err := http.Get(ts.URL + "/admin/reports")
		gt.NoError(t, err)
		var reports []model.Report
		decodeBody(t, listResp, &reports)
		gt.A(t, reports).Longer(0)
		return reports[0].ID
	}

	t.Run("submit normalizes legacy aliases", func(t *testing.T) {
		id := submit(t)

		listResp, err := http.Get(ts.URL + "/admin/reports")
		gt.NoError(t, err)
		var reports []model.Report
		decodeBody(t, listResp, &reports)

		var found *model.Report
		for i := range reports {
			if reports[i].ID == id {
				found = &reports[i]
			}
		}
		gt.NotNil(t, found)
		gt.Equal(t, found.URL, "https://example.com/incident")
		gt.Equal(t, found.Severity, types.SeverityFatality)
		gt.Equal(t, found.Status, types.ReportStatusPending)
	})

	t.Run("approve then list shows approved", func(t *testing.T) {
		id := submit(t)

		resp := doJSON(t, http.MethodPatch, fmt.Sprintf("%s/admin/reports/%s/status", ts.URL, id),
			map[string]string{"status": "approved"})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var updated model.Report
		decodeBody(t, resp, &updated)
		gt.Equal(t, updated.Status, types.ReportStatusApproved)

		// A second decision on a decided report conflicts
		resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/admin/reports/%s/status", ts.URL, id),
			map[string]string{"status": "rejected"})
		gt.Equal(t, resp.StatusCode, http.StatusConflict)
	})

	t.Run("delete then absent", func(t *testing.T) {
		id := submit(t)

		resp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/admin/reports/%s", ts.URL, id), nil)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/admin/reports/%s", ts.URL, id), nil)
		gt.Equal(t, resp.StatusCode, http.StatusNotFound)
	})

	t.Run("update replaces content", func(t *testing.T) {
		id := submit(t)

		resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/admin/reports/%s", ts.URL, id),
			map[string]any{
				"title":       "Corrected title",
				"description": "Corrected description",
				"severity":    "Accident",
			})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var updated model.Report
		decodeBody(t, resp, &updated)
		gt.Equal(t, updated.Title, "Corrected title")
		gt.Equal(t, updated.Severity, types.SeverityAccident)
	})

	t.Run("stats tally statuses", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/admin/stats")
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var stats model.ReportStats
		decodeBody(t, resp, &stats)
		gt.True(t, stats.Total > 0)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/sources/manual", map[string]any{
			"title": "Only a title",
		})
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)
	})

	t.Run("unknown severity rejected", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/sources/manual", map[string]any{
			"title":       "Severity typo",
			"description": "A submission with a made-up severity",
			"severity":    "catastrophic",
			"date":        "2025-06-01",
			"country":     []string{"Germany"},
			"category":    "Chatbots",
		})
		gt.Equal(t, resp.StatusCode, http.StatusBadRequest)

		id := submit(t)
		updateResp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/admin/reports/%s", ts.URL, id),
			map[string]any{
				"title":       "Corrected title",
				"description": "Corrected description",
				"severity":    "catastrophic",
			})
		gt.Equal(t, updateResp.StatusCode, http.StatusBadRequest)
	})
}

func TestSubscriptionEndpoints(t *testing.T) {
	repo := repository.NewMemory()
	seedServerArticles(t, repo)
	ts := newTestServer(t, repo)

	create := func(t *testing.T) model.Subscription {
		t.Helper()
		resp := postJSON(t, ts.URL+"/subscriptions/csv", map[string]any{
			"email":      "analyst@example.com",
			"frequency":  "weekly",
			"categories": []string{"Robotics"},
			"format":     "csv",
		})
		gt.Equal(t, resp.StatusCode, http.StatusCreated)

		var sub model.Subscription
		decodeBody(t, resp, &sub)
		return sub
	}

	t.Run("create and list by email", func(t *testing.T) {
		sub := create(t)
		gt.Equal(t, sub.Status, model.SubscriptionActive)

		resp, err := http.Get(ts.URL + "/subscriptions/csv?email=analyst@example.com")
		gt.NoError(t, err)
		var subs []model.Subscription
		decodeBody(t, resp, &subs)
		gt.A(t, subs).Longer(0)
	})

	t.Run("pause subscription", func(t *testing.T) {
		sub := create(t)

		resp := doJSON(t, http.MethodPatch, fmt.Sprintf("%s/subscriptions/csv/%s", ts.URL, sub.ID),
			map[string]string{"status": "paused"})
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var updated model.Subscription
		decodeBody(t, resp, &updated)
		gt.Equal(t, updated.Status, model.SubscriptionPaused)
	})

	t.Run("trigger export and read history", func(t *testing.T) {
		sub := create(t)

		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/subscriptions/csv/%s/export", ts.URL, sub.ID), nil)
		gt.Equal(t, resp.StatusCode, http.StatusAccepted)

		var record model.ExportRecord
		decodeBody(t, resp, &record)
		gt.Equal(t, record.SubscriptionID, sub.ID)

		deadline := time.Now().Add(2 * time.Second)
		for {
			resp, err := http.Get(fmt.Sprintf("%s/subscriptions/csv/%s/exports", ts.URL, sub.ID))
			gt.NoError(t, err)
			var records []model.ExportRecord
			decodeBody(t, resp, &records)
			if len(records) > 0 && records[0].Status == model.ExportCompleted {
				gt.Equal(t, records[0].RecordCount, 2)
				break
			}
			if time.Now().After(deadline) {
				t.Fatal("export did not complete in time")
			}
			time.Sleep(10 * time.Millisecond)
		}
	})

	t.Run("delete subscription", func(t *testing.T) {
		sub := create(t)

		resp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/subscriptions/csv/%s", ts.URL, sub.ID), nil)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		resp, err := http.Get(fmt.Sprintf("%s/subscriptions/csv/%s/exports", ts.URL, sub.ID))
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusNotFound)
	})

	t.Run("stats", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/subscriptions/csv/stats")
		gt.NoError(t, err)
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		var stats model.SubscriptionStats
		decodeBody(t, resp, &stats)
		gt.True(t, stats.TotalSubscriptions > 0)
	})
}

func TestAPIKeyEndpoints(t *testing.T) {
	repo := repository.NewMemory()
	ts := newTestServer(t, repo)

	resp := postJSON(t, ts.URL+"/api/keys", map[string]string{"name": "ci-pipeline"})
	gt.Equal(t, resp.StatusCode, http.StatusCreated)

	var key model.APIKey
	decodeBody(t, resp, &key)
	gt.Equal(t, key.Name, "ci-pipeline")
	gt.True(t, len(key.Key) > 10)

	listResp, err := http.Get(ts.URL + "/api/keys")
	gt.NoError(t, err)
	var keys []model.APIKey
	decodeBody(t, listResp, &keys)
	gt.A(t, keys).Length(1)

	delResp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/keys/%s", ts.URL, key.ID), nil)
	gt.Equal(t, delResp.StatusCode, http.StatusOK)

	delResp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/keys/%s", ts.URL, key.ID), nil)
	gt.Equal(t, delResp.StatusCode, http.StatusNotFound)
}
