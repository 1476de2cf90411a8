package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

const maxRelevantArticles = 6

// ArticleDetail is the detail view of one article plus related reading
type ArticleDetail struct {
	Article          *model.Article   `json:"article"`
	RelevantArticles []*model.Article `json:"relevant_articles"`
}

// Articles serves article detail lookups
type Articles struct {
	repo interfaces.Repository
}

// NewArticles creates an Articles use case
func NewArticles(repo interfaces.Repository) *Articles {
	return &Articles{repo: repo}
}

// Detail fetches an article and up to 6 related articles sharing its base
// category, newest first, excluding the article itself.
func (u *Articles) Detail(ctx context.Context, id types.ArticleID) (*ArticleDetail, error) {
	article, err := u.repo.GetArticle(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get article", goerr.V("id", id))
	}

	all, err := u.repo.ListArticles(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list articles")
	}

	base := article.CategoryBase()
	relevant := make([]*model.Article, 0, maxRelevantArticles)
	for _, candidate := range all {
		if candidate.ID == article.ID || !candidate.HasCategory() {
			continue
		}
		if candidate.CategoryBase() == base {
			relevant = append(relevant, candidate)
		}
	}
	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].ID > relevant[j].ID
	})
	if len(relevant) > maxRelevantArticles {
		relevant = relevant[:maxRelevantArticles]
	}

	return &ArticleDetail{
		Article:          article,
		RelevantArticles: relevant,
	}, nil
}
