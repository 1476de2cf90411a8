package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu             sync.RWMutex
	articles       map[types.ArticleID]*model.Article
	reports        map[types.ReportID]*model.Report
	subscriptions  map[types.SubscriptionID]*model.Subscription
	exportRecords  map[types.ExportID]*model.ExportRecord
	apiKeys        map[types.APIKeyID]*model.APIKey
	lastUpdateTime *time.Time
	articleCounter types.ArticleID
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		articles:      make(map[types.ArticleID]*model.Article),
		reports:       make(map[types.ReportID]*model.Report),
		subscriptions: make(map[types.SubscriptionID]*model.Subscription),
		exportRecords: make(map[types.ExportID]*model.ExportRecord),
		apiKeys:       make(map[types.APIKeyID]*model.APIKey),
	}
}

// SaveArticle saves an article to memory
func (m *Memory) SaveArticle(ctx context.Context, article *model.Article) error {
	if article == nil {
		return goerr.New("article is nil")
	}
	if article.ID == 0 {
		return goerr.New("article ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	articleCopy := *article
	m.articles[article.ID] = &articleCopy
	return nil
}

// GetArticle retrieves an article by ID
func (m *Memory) GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error) {
	if id == 0 {
		return nil, goerr.New("article ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	article, exists := m.articles[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrArticleNotFound, "no such article", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	articleCopy := *article
	return &articleCopy, nil
}

// ListArticles lists all articles, newest first
func (m *Memory) ListArticles(ctx context.Context) ([]*model.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	articles := make([]*model.Article, 0, len(m.articles))
	for _, article := range m.articles {
		articleCopy := *article
		articles = append(articles, &articleCopy)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ID > articles[j].ID
	})

	return articles, nil
}

// GetNextArticleNumber returns the next article serial number
func (m *Memory) GetNextArticleNumber(ctx context.Context) (types.ArticleID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.articleCounter++
	return m.articleCounter, nil
}

// SetLastUpdateTime records the ingest watermark
func (m *Memory) SetLastUpdateTime(ctx context.Context, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tCopy := t
	m.lastUpdateTime = &tCopy
	return nil
}

// GetLastUpdateTime returns the ingest watermark, nil if never set
func (m *Memory) GetLastUpdateTime(ctx context.Context) (*time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastUpdateTime == nil {
		return nil, nil
	}
	tCopy := *m.lastUpdateTime
	return &tCopy, nil
}

// PutReport saves a self-report
func (m *Memory) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reportCopy := *report
	m.reports[report.ID] = &reportCopy
	return nil
}

// GetReport retrieves a self-report by ID
func (m *Memory) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrReportNotFound, "no such report", goerr.V("id", id))
	}

	reportCopy := *report
	return &reportCopy, nil
}

// ListReports lists all self-reports, newest first
func (m *Memory) ListReports(ctx context.Context) ([]*model.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]*model.Report, 0, len(m.reports))
	for _, report := range m.reports {
		reportCopy := *report
		reports = append(reports, &reportCopy)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// DeleteReport removes a self-report permanently
func (m *Memory) DeleteReport(ctx context.Context, id types.ReportID) error {
	if id == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reports[id]; !exists {
		return goerr.Wrap(model.ErrReportNotFound, "no such report", goerr.V("id", id))
	}

	delete(m.reports, id)
	return nil
}

// PutSubscription saves a subscription
func (m *Memory) PutSubscription(ctx context.Context, sub *model.Subscription) error {
	if sub == nil {
		return goerr.New("subscription is nil")
	}
	if sub.ID == "" {
		return goerr.New("subscription ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	subCopy := *sub
	m.subscriptions[sub.ID] = &subCopy
	return nil
}

// GetSubscription retrieves a subscription by ID
func (m *Memory) GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error) {
	if id == "" {
		return nil, goerr.New("subscription ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.subscriptions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSubscriptionNotFound, "no such subscription", goerr.V("id", id))
	}

	subCopy := *sub
	return &subCopy, nil
}

// ListSubscriptions lists all subscriptions, newest first
func (m *Memory) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := make([]*model.Subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subCopy := *sub
		subs = append(subs, &subCopy)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})

	return subs, nil
}

// DeleteSubscription removes a subscription permanently
func (m *Memory) DeleteSubscription(ctx context.Context, id types.SubscriptionID) error {
	if id == "" {
		return goerr.New("subscription ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subscriptions[id]; !exists {
		return goerr.Wrap(model.ErrSubscriptionNotFound, "no such subscription", goerr.V("id", id))
	}

	delete(m.subscriptions, id)
	return nil
}

// PutExportRecord saves an export history record
func (m *Memory) PutExportRecord(ctx context.Context, record *model.ExportRecord) error {
	if record == nil {
		return goerr.New("export record is nil")
	}
	if record.ID == "" {
		return goerr.New("export record ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordCopy := *record
	m.exportRecords[record.ID] = &recordCopy
	return nil
}

// ListExportRecords lists export records for a subscription, newest first.
// An empty subscription ID lists every record.
func (m *Memory) ListExportRecords(ctx context.Context, subscriptionID types.SubscriptionID) ([]*model.ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.ExportRecord, 0, len(m.exportRecords))
	for _, record := range m.exportRecords {
		if subscriptionID != "" && record.SubscriptionID != subscriptionID {
			continue
		}
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ExportDate.After(records[j].ExportDate)
	})

	return records, nil
}

// PutAPIKey saves an API key record
func (m *Memory) PutAPIKey(ctx context.Context, key *model.APIKey) error {
	if key == nil {
		return goerr.New("API key is nil")
	}
	if key.ID == "" {
		return goerr.New("API key ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	keyCopy := *key
	m.apiKeys[key.ID] = &keyCopy
	return nil
}

// ListAPIKeys lists all API key records, newest first
func (m *Memory) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]*model.APIKey, 0, len(m.apiKeys))
	for _, key := range m.apiKeys {
		keyCopy := *key
		keys = append(keys, &keyCopy)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].CreatedAt.After(keys[j].CreatedAt)
	})

	return keys, nil
}

// DeleteAPIKey removes an API key record permanently
func (m *Memory) DeleteAPIKey(ctx context.Context, id types.APIKeyID) error {
	if id == "" {
		return goerr.New("API key ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.apiKeys[id]; !exists {
		return goerr.Wrap(model.ErrAPIKeyNotFound, "no such API key", goerr.V("id", id))
	}

	delete(m.apiKeys, id)
	return nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
