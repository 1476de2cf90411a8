package interfaces

import (
	"context"
	"time"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// Repository defines the interface for data persistence. All dashboard state
// goes through it; nothing reads or writes storage directly.
type Repository interface {
	// Article operations
	SaveArticle(ctx context.Context, article *model.Article) error
	GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error)
	ListArticles(ctx context.Context) ([]*model.Article, error)
	GetNextArticleNumber(ctx context.Context) (types.ArticleID, error)

	// Ingest watermark, shown as the dashboard's "last updated" stamp
	SetLastUpdateTime(ctx context.Context, t time.Time) error
	GetLastUpdateTime(ctx context.Context) (*time.Time, error)

	// Self-report operations
	PutReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, id types.ReportID) (*model.Report, error)
	ListReports(ctx context.Context) ([]*model.Report, error)
	DeleteReport(ctx context.Context, id types.ReportID) error

	// Subscription operations
	PutSubscription(ctx context.Context, sub *model.Subscription) error
	GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*model.Subscription, error)
	DeleteSubscription(ctx context.Context, id types.SubscriptionID) error

	// Export history operations. An empty subscription ID lists every record.
	PutExportRecord(ctx context.Context, record *model.ExportRecord) error
	ListExportRecords(ctx context.Context, subscriptionID types.SubscriptionID) ([]*model.ExportRecord, error)

	// API key operations
	PutAPIKey(ctx context.Context, key *model.APIKey) error
	ListAPIKeys(ctx context.Context) ([]*model.APIKey, error)
	DeleteAPIKey(ctx context.Context, id types.APIKeyID) error

	// Close closes the repository connection
	Close() error
}
