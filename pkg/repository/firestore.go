package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

const (
	// Collection names
	articlesCollection      = "articles"
	reportsCollection       = "reports"
	subscriptionsCollection = "subscriptions"
	exportsCollection       = "export_records"
	apiKeysCollection       = "api_keys"
	countersCollection      = "counters"
	metaCollection          = "meta"

	// Document IDs
	articleCounterDocID = "article"
	lastUpdateDocID     = "last_update"

	// Field names
	fieldCurrentNumber = "current_number"
	fieldUpdatedAt     = "updated_at"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Test connection by attempting to read from a collection.
	// This fails fast on bad project IDs or permission issues.
	_, err = client.Collection(articlesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		// For other errors (like NotFound for new projects), log but continue
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveArticle saves an article to Firestore
func (f *Firestore) SaveArticle(ctx context.Context, article *model.Article) error {
	if article == nil {
		return goerr.New("article is nil")
	}
	if article.ID == 0 {
		return goerr.New("article ID is empty")
	}

	_, err := f.client.Collection(articlesCollection).Doc(article.ID.String()).Set(ctx, article)
	if err != nil {
		return goerr.Wrap(err, "failed to save article to firestore")
	}

	return nil
}

// GetArticle retrieves an article by ID
func (f *Firestore) GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error) {
	if id == 0 {
		return nil, goerr.New("article ID is empty")
	}

	doc, err := f.client.Collection(articlesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrArticleNotFound, "no such article", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get article from firestore")
	}

	var article model.Article
	if err := doc.DataTo(&article); err != nil {
		return nil, goerr.Wrap(err, "failed to decode article")
	}

	return &article, nil
}

// ListArticles lists all articles, newest first
func (f *Firestore) ListArticles(ctx context.Context) ([]*model.Article, error) {
	iter := f.client.Collection(articlesCollection).Documents(ctx)
	defer iter.Stop()

	var articles []*model.Article
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate articles")
		}

		var article model.Article
		if err := doc.DataTo(&article); err != nil {
			return nil, goerr.Wrap(err, "failed to decode article")
		}
		articles = append(articles, &article)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ID > articles[j].ID
	})

	return articles, nil
}

// GetNextArticleNumber returns the next article serial number using atomic increment
func (f *Firestore) GetNextArticleNumber(ctx context.Context) (types.ArticleID, error) {
	counterDoc := f.client.Collection(countersCollection).Doc(articleCounterDocID)

	var nextNumber types.ArticleID
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// Initialize counter if it doesn't exist
				nextNumber = 1
				return tx.Set(counterDoc, map[string]any{
					fieldCurrentNumber: int64(nextNumber),
				})
			}
			return goerr.Wrap(err, "failed to get counter document")
		}

		currentNumber, err := doc.DataAt(fieldCurrentNumber)
		if err != nil {
			return goerr.Wrap(err, "failed to get current_number field")
		}

		switch v := currentNumber.(type) {
		case int64:
			nextNumber = types.ArticleID(v) + 1
		case int:
			nextNumber = types.ArticleID(v) + 1
		default:
			return goerr.New("unexpected type for current_number")
		}

		return tx.Update(counterDoc, []firestore.Update{
			{Path: fieldCurrentNumber, Value: int64(nextNumber)},
		})
	})

	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next article number")
	}

	return nextNumber, nil
}

// SetLastUpdateTime records the ingest watermark
func (f *Firestore) SetLastUpdateTime(ctx context.Context, t time.Time) error {
	_, err := f.client.Collection(metaCollection).Doc(lastUpdateDocID).Set(ctx, map[string]any{
		fieldUpdatedAt: t,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save last update time")
	}
	return nil
}

// GetLastUpdateTime returns the ingest watermark, nil if never set
func (f *Firestore) GetLastUpdateTime(ctx context.Context) (*time.Time, error) {
	doc, err := f.client.Collection(metaCollection).Doc(lastUpdateDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get last update time")
	}

	raw, err := doc.DataAt(fieldUpdatedAt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get updated_at field")
	}

	t, ok := raw.(time.Time)
	if !ok {
		return nil, goerr.New("unexpected type for updated_at")
	}
	return &t, nil
}

// PutReport saves a self-report
func (f *Firestore) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	_, err := f.client.Collection(reportsCollection).Doc(report.ID.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to firestore")
	}

	return nil
}

// GetReport retrieves a self-report by ID
func (f *Firestore) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	doc, err := f.client.Collection(reportsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReportNotFound, "no such report", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get report from firestore")
	}

	var report model.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report")
	}

	return &report, nil
}

// ListReports lists all self-reports, newest first
func (f *Firestore) ListReports(ctx context.Context) ([]*model.Report, error) {
	iter := f.client.Collection(reportsCollection).Documents(ctx)
	defer iter.Stop()

	var reports []*model.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports")
		}

		var report model.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report")
		}
		reports = append(reports, &report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// DeleteReport removes a self-report permanently
func (f *Firestore) DeleteReport(ctx context.Context, id types.ReportID) error {
	if id == "" {
		return goerr.New("report ID is empty")
	}

	docRef := f.client.Collection(reportsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrReportNotFound, "no such report", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get report from firestore")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete report from firestore")
	}

	return nil
}

// PutSubscription saves a subscription
func (f *Firestore) PutSubscription(ctx context.Context, sub *model.Subscription) error {
	if sub == nil {
		return goerr.New("subscription is nil")
	}
	if sub.ID == "" {
		return goerr.New("subscription ID is empty")
	}

	_, err := f.client.Collection(subscriptionsCollection).Doc(sub.ID.String()).Set(ctx, sub)
	if err != nil {
		return goerr.Wrap(err, "failed to save subscription to firestore")
	}

	return nil
}

// GetSubscription retrieves a subscription by ID
func (f *Firestore) GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error) {
	if id == "" {
		return nil, goerr.New("subscription ID is empty")
	}

	doc, err := f.client.Collection(subscriptionsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSubscriptionNotFound, "no such subscription", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get subscription from firestore")
	}

	var sub model.Subscription
	if err := doc.DataTo(&sub); err != nil {
		return nil, goerr.Wrap(err, "failed to decode subscription")
	}

	return &sub, nil
}

// ListSubscriptions lists all subscriptions, newest first
func (f *Firestore) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	iter := f.client.Collection(subscriptionsCollection).Documents(ctx)
	defer iter.Stop()

	var subs []*model.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate subscriptions")
		}

		var sub model.Subscription
		if err := doc.DataTo(&sub); err != nil {
			return nil, goerr.Wrap(err, "failed to decode subscription")
		}
		subs = append(subs, &sub)
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})

	return subs, nil
}

// DeleteSubscription removes a subscription permanently
func (f *Firestore) DeleteSubscription(ctx context.Context, id types.SubscriptionID) error {
	if id == "" {
		return goerr.New("subscription ID is empty")
	}

	docRef := f.client.Collection(subscriptionsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrSubscriptionNotFound, "no such subscription", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get subscription from firestore")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete subscription from firestore")
	}

	return nil
}

// PutExportRecord saves an export history record
func (f *Firestore) PutExportRecord(ctx context.Context, record *model.ExportRecord) error {
	if record == nil {
		return goerr.New("export record is nil")
	}
	if record.ID == "" {
		return goerr.New("export record ID is empty")
	}

	_, err := f.client.Collection(exportsCollection).Doc(record.ID.String()).Set(ctx, record)
	if err != nil {
		return goerr.Wrap(err, "failed to save export record to firestore")
	}

	return nil
}

// ListExportRecords lists export records for a subscription, newest first.
// An empty subscription ID lists every record.
func (f *Firestore) ListExportRecords(ctx context.Context, subscriptionID types.SubscriptionID) ([]*model.ExportRecord, error) {
	query := f.client.Collection(exportsCollection).Query
	if subscriptionID != "" {
		query = query.Where("subscriptionId", "==", subscriptionID.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.ExportRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate export records")
		}

		var record model.ExportRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode export record")
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ExportDate.After(records[j].ExportDate)
	})

	return records, nil
}

// PutAPIKey saves an API key record
func (f *Firestore) PutAPIKey(ctx context.Context, key *model.APIKey) error {
	if key == nil {
		return goerr.New("API key is nil")
	}
	if key.ID == "" {
		return goerr.New("API key ID is empty")
	}

	_, err := f.client.Collection(apiKeysCollection).Doc(key.ID.String()).Set(ctx, key)
	if err != nil {
		return goerr.Wrap(err, "failed to save API key to firestore")
	}

	return nil
}

// ListAPIKeys lists all API key records, newest first
func (f *Firestore) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	iter := f.client.Collection(apiKeysCollection).Documents(ctx)
	defer iter.Stop()

	var keys []*model.APIKey
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate API keys")
		}

		var key model.APIKey
		if err := doc.DataTo(&key); err != nil {
			return nil, goerr.Wrap(err, "failed to decode API key")
		}
		keys = append(keys, &key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].CreatedAt.After(keys[j].CreatedAt)
	})

	return keys, nil
}

// DeleteAPIKey removes an API key record permanently
func (f *Firestore) DeleteAPIKey(ctx context.Context, id types.APIKeyID) error {
	if id == "" {
		return goerr.New("API key ID is empty")
	}

	docRef := f.client.Collection(apiKeysCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrAPIKeyNotFound, "no such API key", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get API key from firestore")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete API key from firestore")
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
