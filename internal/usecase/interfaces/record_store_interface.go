package interfaces

import (
	"context"
	"errors"

	"sales_associate/internal/domain/entities"
)

// ErrRowNotFound is returned by write operations that could not locate the
// target row. Read operations signal absence with zero values instead.
var ErrRowNotFound = errors.New("row not found")

// IRecordStore abstracts the per-site tabular store holding Quotes/Proposals.
//
// The store is shared with humans editing the sheet directly, so there is no
// caching: every operation re-reads. Row indexes are 1-based and include the
// header row. UpdateByField is read-modify-write with no concurrency check;
// concurrent writers race and the last write wins.

type IRecordStore interface {
	List(ctx context.Context, siteID, table string) ([]entities.Record, error)
	FindByField(ctx context.Context, siteID, table, field, value string) (entities.Record, error)
	FindRowIndex(ctx context.Context, siteID, table, field, value string) (int, error)
	FullRow(ctx context.Context, siteID, table, field, value string) (headers []string, row []string, err error)
	Append(ctx context.Context, siteID, table string, rows [][]string) error
	UpdateByField(ctx context.Context, siteID, table, field, value string, patch map[string]string) error
	DeleteRow(ctx context.Context, siteID, table string, rowIndex int) error
}
