package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
)

// Taxonomy holds the optional category taxonomy configuration
type Taxonomy struct {
	Path string
}

// Flags returns CLI flags for Taxonomy configuration
func (t *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "categories",
			Usage:       "Path to category taxonomy YAML; submissions are restricted to it when set",
			Category:    "Taxonomy",
			Sources:     cli.EnvVars("AIWATCH_CATEGORIES"),
			Destination: &t.Path,
		},
	}
}

// Configure loads the taxonomy if a path is set, nil otherwise
func (t *Taxonomy) Configure(ctx context.Context) (*model.CategoriesConfig, error) {
	if t.Path == "" {
		return nil, nil
	}

	categories, err := LoadCategoriesFromFile(t.Path)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Loaded category taxonomy",
		slog.String("path", t.Path),
		slog.Int("categories", len(categories.Categories)),
	)
	return categories, nil
}

// LoadCategoriesFromFile loads categories from a YAML file
func LoadCategoriesFromFile(path string) (*model.CategoriesConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
