package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"
)

var (
	ErrUnknownSite      = errors.New("unknown site")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrNoUpdates        = errors.New("no updates provided")
	ErrStoreWriteFailed = errors.New("store write failed")
)

// IQuoteUseCase is the read/CRUD surface over quotes and proposals across all
// sites.

type IQuoteUseCase interface {
	ListQuotes(ctx context.Context, siteID, status string) ([]entities.Record, error)
	ListProposals(ctx context.Context, siteID, status string) ([]entities.Record, error)
	GetQuote(ctx context.Context, siteID, quoteID string) (entities.Record, error)
	UpdateQuote(ctx context.Context, siteID, quoteID string, updates map[string]string) error
	DeleteQuote(ctx context.Context, siteID, quoteID string) error
	DuplicateQuote(ctx context.Context, siteID, quoteID string) (string, error)
	ListNotifications(ctx context.Context, clientID string) ([]entities.EmailDispatch, error)
}

type QuoteUseCase struct {
	store       interfaces.IRecordStore
	sites       *entities.SiteRegistry
	ledger      interfaces.IDispatchLedger
	siteTimeout time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store interfaces.IRecordStore, sites *entities.SiteRegistry, ledger interfaces.IDispatchLedger, siteTimeout time.Duration) *QuoteUseCase {
	if siteTimeout <= 0 {
		siteTimeout = 15 * time.Second
	}
	return &QuoteUseCase{store: store, sites: sites, ledger: ledger, siteTimeout: siteTimeout}
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, siteID, status string) ([]entities.Record, error) {
	return u.listAcrossSites(ctx, entities.TableQuotes, siteID, status)
}

func (u *QuoteUseCase) ListProposals(ctx context.Context, siteID, status string) ([]entities.Record, error) {
	return u.listAcrossSites(ctx, entities.TableProposals, siteID, status)
}

// listAcrossSites is the one shared aggregation path: per-site reads with
// per-site fault isolation, invalid-row filtering, optional exact status
// match, newest first. A site that cannot be read contributes nothing and the
// caller never sees the failure.
func (u *QuoteUseCase) listAcrossSites(ctx context.Context, table, siteID, status string) ([]entities.Record, error) {
	var sites []entities.Site
	if siteID != "" {
		site, ok := u.sites.Get(siteID)
		if !ok {
			return nil, ErrUnknownSite
		}
		sites = []entities.Site{site}
	} else {
		sites = u.sites.All()
	}

	all := make([]entities.Record, 0, 64)
	for _, site := range sites {
		records, err := u.listSite(ctx, site, table)
		if err != nil {
			log.Printf("[quote][usecase] list failed site_id=%s table=%s err=%v", site.ID, table, err)
			continue
		}
		for _, rec := range records {
			rec[entities.ColSiteID] = site.ID
			rec[entities.ColSiteName] = site.Name
			all = append(all, rec)
		}
	}

	filtered := all[:0]
	for _, rec := range all {
		if !rec.Valid() {
			continue
		}
		if status != "" && rec[entities.ColStatus] != status {
			continue
		}
		filtered = append(filtered, rec)
	}

	sortByCreatedDateDesc(filtered)
	return filtered, nil
}

func (u *QuoteUseCase) listSite(ctx context.Context, site entities.Site, table string) ([]entities.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, u.siteTimeout)
	defer cancel()
	return u.store.List(ctx, site.ID, table)
}

// GetQuote resolves the site explicitly when given, otherwise routes by the
// quote's ID prefix.
func (u *QuoteUseCase) GetQuote(ctx context.Context, siteID, quoteID string) (entities.Record, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	var site entities.Site
	var ok bool
	if siteID != "" {
		site, ok = u.sites.Get(siteID)
	} else {
		site, ok = u.sites.SiteForClientID(quoteID)
	}
	if !ok {
		return nil, ErrUnknownSite
	}

	rec, err := u.store.FindByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, quoteID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrQuoteNotFound
	}
	rec[entities.ColSiteID] = site.ID
	rec[entities.ColSiteName] = site.Name
	return rec, nil
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, siteID, quoteID string, updates map[string]string) error {
	if _, ok := u.sites.Get(siteID); !ok {
		return ErrUnknownSite
	}
	if strings.TrimSpace(quoteID) == "" {
		return ErrInvalidQuoteID
	}
	if len(updates) == 0 {
		return ErrNoUpdates
	}

	patch := make(map[string]string, len(updates)+1)
	for k, v := range updates {
		patch[k] = v
	}
	patch[entities.ColLastUpdated] = nowISO()

	err := u.store.UpdateByField(ctx, siteID, entities.TableQuotes, entities.ColClientID, quoteID, patch)
	if errors.Is(err, interfaces.ErrRowNotFound) {
		return ErrQuoteNotFound
	}
	return err
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, siteID, quoteID string) error {
	if _, ok := u.sites.Get(siteID); !ok {
		return ErrUnknownSite
	}
	if strings.TrimSpace(quoteID) == "" {
		return ErrInvalidQuoteID
	}

	idx, err := u.store.FindRowIndex(ctx, siteID, entities.TableQuotes, entities.ColClientID, quoteID)
	if err != nil {
		return err
	}
	if idx == 0 {
		return ErrQuoteNotFound
	}
	return u.store.DeleteRow(ctx, siteID, entities.TableQuotes, idx)
}

// DuplicateQuote clones a row under a fresh client ID with today's creation
// date and status reset to NEW.
func (u *QuoteUseCase) DuplicateQuote(ctx context.Context, siteID, quoteID string) (string, error) {
	site, ok := u.sites.Get(siteID)
	if !ok {
		return "", ErrUnknownSite
	}
	if strings.TrimSpace(quoteID) == "" {
		return "", ErrInvalidQuoteID
	}

	headers, row, err := u.store.FullRow(ctx, siteID, entities.TableQuotes, entities.ColClientID, quoteID)
	if err != nil {
		return "", err
	}
	if row == nil {
		return "", ErrQuoteNotFound
	}

	newID, err := nextClientID(ctx, u.store, site)
	if err != nil {
		return "", err
	}

	newRow := make([]string, len(headers))
	copy(newRow, row)
	for i, h := range headers {
		switch h {
		case entities.ColClientID:
			newRow[i] = newID
		case entities.ColCreatedDate:
			newRow[i] = time.Now().UTC().Format("2006-01-02")
		case entities.ColStatus:
			newRow[i] = string(entities.QuoteStatusNew)
		}
	}

	if err := u.store.Append(ctx, siteID, entities.TableQuotes, [][]string{newRow}); err != nil {
		return "", err
	}
	log.Printf("[quote][usecase] duplicated quote_id=%s new_quote_id=%s site_id=%s", quoteID, newID, siteID)
	return newID, nil
}

func (u *QuoteUseCase) ListNotifications(ctx context.Context, clientID string) ([]entities.EmailDispatch, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidQuoteID
	}
	if u.ledger == nil {
		return []entities.EmailDispatch{}, nil
	}
	return u.ledger.ListByClientID(ctx, clientID)
}

// nextClientID derives the next sequential ID for a site by scanning existing
// quotes with the current year's prefix. Not atomic: two concurrent calls can
// observe the same maximum. Humans also add rows directly in the sheet, which
// is why the scan is authoritative rather than a counter.
func nextClientID(ctx context.Context, store interfaces.IRecordStore, site entities.Site) (string, error) {
	quotes, err := store.List(ctx, site.ID, entities.TableQuotes)
	if err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("%s-%d-", site.ClientIDPrefix, time.Now().Year())
	max := 0
	for _, q := range quotes {
		id := q.ClientID()
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1), nil
}

// sortByCreatedDateDesc orders newest first; rows whose creation date is
// missing or unparsable sort as time zero, i.e. last.
func sortByCreatedDateDesc(records []entities.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseCreatedDate(records[i]).After(parseCreatedDate(records[j]))
	})
}

var createdDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

func parseCreatedDate(rec entities.Record) time.Time {
	raw := strings.TrimSpace(rec[entities.ColCreatedDate])
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range createdDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
