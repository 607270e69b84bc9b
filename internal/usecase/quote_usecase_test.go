package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"sales_associate/internal/domain/entities"
	mock_interfaces "sales_associate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testRegistry() *entities.SiteRegistry {
	return entities.NewSiteRegistry([]entities.Site{
		{ID: "slow-morocco", Name: "Slow Morocco", SiteURL: "https://slowmorocco.com", Currency: "EUR", ClientIDPrefix: "SM"},
		{ID: "slow-namibia", Name: "Slow Namibia", SiteURL: "https://slownamibia.com", Currency: "USD", ClientIDPrefix: "SN"},
	})
}

func TestQuoteUseCase_ListQuotes(t *testing.T) {
	t.Run("failing site is skipped, rows tagged and sorted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return([]entities.Record{
			{"Client_ID": "SM-2025-001", "Created_Date": "2025-01-01"},
			{"Client_ID": "SM-2025-002", "Created_Date": "2025-06-01"},
			{"Client_ID": "SM-2025-003"},
		}, nil)
		store.EXPECT().List(gomock.Any(), "slow-namibia", entities.TableQuotes).Return(nil, errors.New("upstream 503"))

		got, err := uc.ListQuotes(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(got))
		}
		if got[0].ClientID() != "SM-2025-002" || got[1].ClientID() != "SM-2025-001" || got[2].ClientID() != "SM-2025-003" {
			t.Fatalf("unexpected order: %v %v %v", got[0].ClientID(), got[1].ClientID(), got[2].ClientID())
		}
		for _, rec := range got {
			if rec[entities.ColSiteID] != "slow-morocco" || rec[entities.ColSiteName] != "Slow Morocco" {
				t.Fatalf("row not tagged with site: %+v", rec)
			}
		}
	})

	t.Run("invalid rows filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return([]entities.Record{
			{"Client_ID": "Client_ID"},
			{"Client_ID": "SM-2025-001,SM-2025-002"},
			{"Client_ID": ""},
			{"Client_ID": "SM-2025-004", "Created_Date": "2025-02-02"},
		}, nil)

		got, err := uc.ListQuotes(context.Background(), "slow-morocco", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ClientID() != "SM-2025-004" {
			t.Fatalf("expected only the valid row, got %+v", got)
		}
	})

	t.Run("status filter is exact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return([]entities.Record{
			{"Client_ID": "SM-2025-001", "Status": "NEW"},
			{"Client_ID": "SM-2025-002", "Status": "PAID"},
		}, nil)

		got, err := uc.ListQuotes(context.Background(), "slow-morocco", "PAID")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ClientID() != "SM-2025-002" {
			t.Fatalf("expected only the PAID row, got %+v", got)
		}
	})

	t.Run("unknown site", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, testRegistry(), nil, time.Second)
		_, err := uc.ListQuotes(context.Background(), "slow-atlantis", "")
		if !errors.Is(err, ErrUnknownSite) {
			t.Fatalf("expected ErrUnknownSite, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetQuote(t *testing.T) {
	t.Run("routes by prefix when site omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().FindByField(gomock.Any(), "slow-namibia", entities.TableQuotes, entities.ColClientID, "SN-2025-007").
			Return(entities.Record{"Client_ID": "SN-2025-007"}, nil)

		got, err := uc.GetQuote(context.Background(), "", "SN-2025-007")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[entities.ColSiteID] != "slow-namibia" {
			t.Fatalf("expected site tag, got %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-099").
			Return(nil, nil)

		_, err := uc.GetQuote(context.Background(), "slow-morocco", "SM-2025-099")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	t.Run("patch gains Last_Updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch["Status"] != "PAID" {
					t.Fatalf("expected status in patch, got %+v", patch)
				}
				if patch[entities.ColLastUpdated] == "" {
					t.Fatalf("expected Last_Updated to be set")
				}
				return nil
			},
		)

		err := uc.UpdateQuote(context.Background(), "slow-morocco", "SM-2025-001", map[string]string{"Status": "PAID"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, testRegistry(), nil, time.Second)
		err := uc.UpdateQuote(context.Background(), "slow-morocco", "SM-2025-001", nil)
		if !errors.Is(err, ErrNoUpdates) {
			t.Fatalf("expected ErrNoUpdates, got %v", err)
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	t.Run("deletes located row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().FindRowIndex(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001").Return(5, nil)
		store.EXPECT().DeleteRow(gomock.Any(), "slow-morocco", entities.TableQuotes, 5).Return(nil)

		if err := uc.DeleteQuote(context.Background(), "slow-morocco", "SM-2025-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

		store.EXPECT().FindRowIndex(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-404").Return(0, nil)

		err := uc.DeleteQuote(context.Background(), "slow-morocco", "SM-2025-404")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_DuplicateQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	uc := NewQuoteUseCase(store, testRegistry(), nil, time.Second)

	headers := []string{"Client_ID", "First_Name", "Status", "Created_Date"}
	row := []string{"SM-2025-001", "Aisha", "PAID", "2025-01-01"}

	store.EXPECT().FullRow(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001").
		Return(headers, row, nil)
	store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return([]entities.Record{
		{"Client_ID": "SM-2025-001"},
		{"Client_ID": "SM-2025-002"},
	}, nil)
	store.EXPECT().Append(gomock.Any(), "slow-morocco", entities.TableQuotes, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, rows [][]string) error {
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			r := rows[0]
			if r[1] != "Aisha" {
				t.Fatalf("expected copied fields, got %v", r)
			}
			if r[2] != "NEW" {
				t.Fatalf("expected status reset to NEW, got %q", r[2])
			}
			if r[3] == "2025-01-01" {
				t.Fatalf("expected fresh creation date")
			}
			return nil
		},
	)

	newID, err := uc.DuplicateQuote(context.Background(), "slow-morocco", "SM-2025-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newID == "SM-2025-001" || newID == "" {
		t.Fatalf("expected a fresh id, got %q", newID)
	}
}

func TestNextClientID(t *testing.T) {
	site := entities.Site{ID: "slow-morocco", ClientIDPrefix: "SM"}
	year := time.Now().Year()
	prefix := "SM-" + itoa(year) + "-"

	t.Run("increments past the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)

		store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return([]entities.Record{
			{"Client_ID": prefix + "001"},
			{"Client_ID": prefix + "002"},
			{"Client_ID": "SM-2019-950"},
			{"Client_ID": "SN-" + itoa(year) + "-400"},
			{"Client_ID": prefix + "junk"},
		}, nil)

		id, err := nextClientID(context.Background(), store, site)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != prefix+"003" {
			t.Fatalf("expected %s003, got %s", prefix, id)
		}
	})

	t.Run("starts at 001 when empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)

		store.EXPECT().List(gomock.Any(), "slow-morocco", entities.TableQuotes).Return(nil, nil)

		id, err := nextClientID(context.Background(), store, site)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != prefix+"001" {
			t.Fatalf("expected %s001, got %s", prefix, id)
		}
	})
}

func itoa(n int) string { return strconv.Itoa(n) }
