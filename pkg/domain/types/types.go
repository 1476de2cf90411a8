package types

import (
	"strconv"

	"github.com/google/uuid"
)

// ArticleID represents an ingested article's serial number
type ArticleID int64

// String returns the decimal representation of the article ID
func (id ArticleID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ReportID represents a self-report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() (ReportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return ReportID(id.String()), nil
}

// SubscriptionID represents a CSV subscription identifier
type SubscriptionID string

// String returns the string representation
func (id SubscriptionID) String() string {
	return string(id)
}

// NewSubscriptionID creates a new SubscriptionID using UUID v7
func NewSubscriptionID() (SubscriptionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SubscriptionID(id.String()), nil
}

// ExportID represents an export history record identifier
type ExportID string

// String returns the string representation
func (id ExportID) String() string {
	return string(id)
}

// NewExportID creates a new ExportID using UUID v7
func NewExportID() (ExportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return ExportID(id.String()), nil
}

// APIKeyID represents an API key record identifier
type APIKeyID string

// String returns the string representation
func (id APIKeyID) String() string {
	return string(id)
}

// NewAPIKeyID creates a new APIKeyID
func NewAPIKeyID() APIKeyID {
	return APIKeyID(uuid.New().String())
}
