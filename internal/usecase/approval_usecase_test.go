package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"
	mock_interfaces "sales_associate/internal/usecase/interfaces/mocks"
	"sales_associate/pkg/approvaltoken"

	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func approvalCfg() ApprovalConfig {
	return ApprovalConfig{
		Secret:             testSecret,
		TokenTTL:           approvaltoken.DefaultTTL,
		BaseURL:            "https://sales.example.com",
		AdminEmail:         "admin@example.com",
		FallbackPaymentURL: "https://www.paypal.com/paypalme/slowmorocco",
	}
}

func TestApprovalUseCase_Approve(t *testing.T) {
	t.Run("invalid token performs no store access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), nil, nil, nil, approvalCfg())

		err := uc.Approve(context.Background(), "SM-2025-001", "bogus")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown prefix", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, testRegistry(), nil, nil, nil, approvalCfg())
		token := approvaltoken.New("ZZ-2025-001", testSecret, time.Hour)
		err := uc.Approve(context.Background(), "ZZ-2025-001", token)
		if !errors.Is(err, ErrUnknownSite) {
			t.Fatalf("expected ErrUnknownSite, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), nil, nil, nil, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(nil, nil)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		err := uc.Approve(context.Background(), "SM-2025-001", token)
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("legacy token accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), nil, nil, nil, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(nil, nil)

		token := approvaltoken.Legacy("SM-2025-001", testSecret)
		err := uc.Approve(context.Background(), "SM-2025-001", token)
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound past token check, got %v", err)
		}
	})

	t.Run("approve transitions both records and sends payment request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		ledger := mock_interfaces.NewMockIDispatchLedger(ctrl)
		gateway := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), email, ledger, gateway, approvalCfg())

		proposal := entities.Record{
			"Client_ID":   "SM-2025-001",
			"Total_Price": "4500",
		}
		quote := entities.Record{
			"Client_ID":  "SM-2025-001",
			"First_Name": "Aisha",
			"Email":      "aisha@example.com",
		}

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(proposal, nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch[entities.ColStatus] != "APPROVED" || patch[entities.ColApprovedDate] == "" {
					t.Fatalf("unexpected proposal patch: %+v", patch)
				}
				return nil
			},
		)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch[entities.ColStatus] != "PROPOSAL_APPROVED" {
					t.Fatalf("unexpected quote patch: %+v", patch)
				}
				return nil
			},
		)
		ledger.EXPECT().Has(gomock.Any(), "SM-2025-001", entities.DispatchPaymentRequest).Return(false, nil)
		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001").Return(quote, nil)
		gateway.EXPECT().CreatePaymentLink(gomock.Any(), "SM-2025-001", gomock.Any(), 4500.0, "EUR").Return("https://pay.example.com/pref-1", nil)
		email.EXPECT().SendPaymentRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Site, data interfaces.PaymentRequestData) (string, error) {
				if data.PaymentURL != "https://pay.example.com/pref-1" || data.TotalAmount != "4500" || data.Currency != "EUR" {
					t.Fatalf("unexpected payment request: %+v", data)
				}
				if !strings.HasPrefix(data.ProposalURL, "https://slowmorocco.com/proposal/") {
					t.Fatalf("expected derived proposal url, got %q", data.ProposalURL)
				}
				return "msg-9", nil
			},
		)
		ledger.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.EmailDispatch) (entities.EmailDispatch, error) {
				if d.Kind != entities.DispatchPaymentRequest {
					t.Fatalf("unexpected ledger kind: %s", d.Kind)
				}
				return d, nil
			},
		)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		if err := uc.Approve(context.Background(), "SM-2025-001", token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payment request already sent is not resent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		ledger := mock_interfaces.NewMockIDispatchLedger(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), email, ledger, nil, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(entities.Record{"Client_ID": "SM-2025-001"}, nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).Return(nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).Return(nil)
		ledger.EXPECT().Has(gomock.Any(), "SM-2025-001", entities.DispatchPaymentRequest).Return(true, nil)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		if err := uc.Approve(context.Background(), "SM-2025-001", token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure falls back to static payment url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		gateway := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), email, nil, gateway, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").
			Return(entities.Record{"Client_ID": "SM-2025-001", "Total_Price": "2500"}, nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).Return(nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).Return(nil)
		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001").
			Return(entities.Record{"First_Name": "Aisha", "Email": "aisha@example.com"}, nil)
		gateway.EXPECT().CreatePaymentLink(gomock.Any(), "SM-2025-001", gomock.Any(), 2500.0, "EUR").Return("", errors.New("gateway down"))
		email.EXPECT().SendPaymentRequest(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Site, data interfaces.PaymentRequestData) (string, error) {
				if data.PaymentURL != "https://www.paypal.com/paypalme/slowmorocco/2500EUR" {
					t.Fatalf("unexpected fallback url: %q", data.PaymentURL)
				}
				return "msg-1", nil
			},
		)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		if err := uc.Approve(context.Background(), "SM-2025-001", token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApprovalUseCase_Reject(t *testing.T) {
	t.Run("default notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), nil, nil, nil, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(entities.Record{"Client_ID": "SM-2025-001"}, nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch[entities.ColStatus] != "REJECTED" || patch[entities.ColNotes] != "Rejected by admin" {
					t.Fatalf("unexpected proposal patch: %+v", patch)
				}
				return nil
			},
		)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch[entities.ColStatus] != "PROPOSAL_REJECTED" || patch[entities.ColNotes] != "Proposal rejected" {
					t.Fatalf("unexpected quote patch: %+v", patch)
				}
				return nil
			},
		)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		if err := uc.Reject(context.Background(), "SM-2025-001", token, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := NewApprovalUseCase(store, testRegistry(), nil, nil, nil, approvalCfg())

		store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").Return(entities.Record{"Client_ID": "SM-2025-001"}, nil)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
				if patch[entities.ColNotes] != "price too high" {
					t.Fatalf("expected caller notes, got %+v", patch)
				}
				return nil
			},
		)
		store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001", gomock.Any()).Return(nil)

		token := approvaltoken.New("SM-2025-001", testSecret, time.Hour)
		if err := uc.Reject(context.Background(), "SM-2025-001", token, "price too high"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApprovalUseCase_RequestApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIRecordStore(ctrl)
	email := mock_interfaces.NewMockIEmailSender(ctrl)
	ledger := mock_interfaces.NewMockIDispatchLedger(ctrl)
	uc := NewApprovalUseCase(store, testRegistry(), email, ledger, nil, approvalCfg())

	store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001").
		Return(entities.Record{"Client_ID": "SM-2025-001", "Total_Price": "4500"}, nil)
	store.EXPECT().UpdateByField(gomock.Any(), "slow-morocco", entities.TableProposals, entities.ColClientID, "SM-2025-001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, _, _ string, patch map[string]string) error {
			if patch[entities.ColStatus] != "PENDING_APPROVAL" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return nil
		},
	)
	store.EXPECT().FindByField(gomock.Any(), "slow-morocco", entities.TableQuotes, entities.ColClientID, "SM-2025-001").
		Return(entities.Record{"First_Name": "Aisha", "Last_Name": "Benali"}, nil)
	email.EXPECT().SendApprovalRequest(gomock.Any(), gomock.Any(), "admin@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Site, _ string, data interfaces.ApprovalRequestData) (string, error) {
			if data.ClientName != "Aisha Benali" {
				t.Fatalf("unexpected client name: %q", data.ClientName)
			}
			for _, link := range []string{data.ApproveURL, data.RejectURL} {
				if !strings.HasPrefix(link, "https://sales.example.com/v1/webhooks/approval?") {
					t.Fatalf("unexpected link: %q", link)
				}
				if !strings.Contains(link, "clientId=SM-2025-001") || !strings.Contains(link, "token=") {
					t.Fatalf("link missing params: %q", link)
				}
			}
			if !strings.Contains(data.ApproveURL, "action=approve") || !strings.Contains(data.RejectURL, "action=reject") {
				t.Fatalf("links missing actions: %+v", data)
			}
			return "msg-3", nil
		},
	)
	ledger.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.EmailDispatch) (entities.EmailDispatch, error) {
			if d.Kind != entities.DispatchApprovalRequest || d.Recipient != "admin@example.com" {
				t.Fatalf("unexpected ledger entry: %+v", d)
			}
			return d, nil
		},
	)

	if err := uc.RequestApproval(context.Background(), "SM-2025-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
