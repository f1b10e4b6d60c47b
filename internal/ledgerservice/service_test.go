package ledgerservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const (
	testCPR    = "0123456789"
	testNumber = "000000001"
)

func TestPost(t *testing.T) {
	entry := domain.JournalEntry{ID: 1, AccountID: 2, EntryTime: time.Now().UTC(), Text: "deposit", Amount: 500}

	type postFunc func(s *Service, ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)

	deposit := (*Service).Deposit
	withdraw := (*Service).Withdraw

	testCases := []struct {
		name       string
		post       postFunc
		cpr        string
		text       string
		amount     float64
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name:   "DepositOK",
			post:   deposit,
			cpr:    testCPR,
			text:   "deposit",
			amount: 500,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Post(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber), gomock.Eq("deposit"), gomock.Eq(500.0)).
					Times(1).
					Return(entry, nil)
			},
		},
		{
			name:   "WithdrawStoresNegativeAmount",
			post:   withdraw,
			cpr:    testCPR,
			text:   "deposit",
			amount: 300,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Post(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber), gomock.Eq("deposit"), gomock.Eq(-300.0)).
					Times(1).
					Return(entry, nil)
			},
		},
		{
			name:   "DepositWithinPennyTolerance",
			post:   deposit,
			cpr:    testCPR,
			text:   "deposit",
			amount: -0.001,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Post(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber), gomock.Eq("deposit"), gomock.Eq(-0.001)).
					Times(1).
					Return(entry, nil)
			},
		},
		{
			name:   "DepositNegativeAmount",
			post:   deposit,
			cpr:    testCPR,
			text:   "deposit",
			amount: -1,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name:   "WithdrawNegativeAmount",
			post:   withdraw,
			cpr:    testCPR,
			text:   "withdrawal",
			amount: -0.01,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name:   "EmptyText",
			post:   deposit,
			cpr:    testCPR,
			text:   "",
			amount: 10,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrEmptyText,
		},
		{
			name:   "InvalidCPR",
			post:   withdraw,
			cpr:    "123",
			text:   "withdrawal",
			amount: 10,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidCPR,
		},
		{
			name:   "ErrAccountNotFound",
			post:   deposit,
			cpr:    testCPR,
			text:   "deposit",
			amount: 10,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Post(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber), gomock.Eq("deposit"), gomock.Eq(10.0)).
					Times(1).
					Return(domain.JournalEntry{}, domain.ErrAccountNotFound)
			},
			wantErr: errorspkg.ErrNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := tc.post(New(repo), context.Background(), tc.cpr, testNumber, tc.text, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr != nil {
				require.Empty(t, got)
				return
			}

			require.Equal(t, entry, got)
		})
	}
}

func TestBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Balance(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber)).Times(1).Return(600.0, nil)

	service := New(repo)

	got, err := service.Balance(context.Background(), testCPR, testNumber)
	require.NoError(t, err)
	require.InDelta(t, 600, got, domain.PennyTolerance)

	_, err = service.Balance(context.Background(), "x", testNumber)
	require.ErrorIs(t, err, domain.ErrInvalidCPR)
}

func TestHistory(t *testing.T) {
	t0 := time.Now().UTC()
	entries := []domain.JournalEntry{
		{ID: 1, AccountID: 2, EntryTime: t0, Text: "first deposit", Amount: 500},
		{ID: 2, AccountID: 2, EntryTime: t0.Add(time.Millisecond), Text: "second deposit", Amount: 400},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().History(gomock.Any(), gomock.Eq(testCPR), gomock.Eq(testNumber)).Times(1).Return(entries, nil)

	got, err := New(repo).History(context.Background(), testCPR, testNumber)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}

func TestScanLargeTransactions(t *testing.T) {
	since := time.Now().UTC()
	klaus := domain.Customer{ID: 1, Name: "Klaus", CPR: "0123456789"}
	peter := domain.Customer{ID: 2, Name: "Peter", CPR: "1234567890"}

	entry := func(id int64, customer domain.Customer, amount float64) domain.FlaggedEntry {
		return domain.FlaggedEntry{
			Customer: customer,
			Entry: domain.JournalEntry{
				ID:        id,
				AccountID: customer.ID * 10,
				EntryTime: since.Add(time.Duration(id) * time.Millisecond),
				Text:      "over 10K",
				Amount:    amount,
			},
		}
	}

	testCases := []struct {
		name    string
		flagged []domain.FlaggedEntry
		want    []domain.CustomerEntries
	}{
		{
			name:    "NoEntries",
			flagged: []domain.FlaggedEntry{},
			want:    []domain.CustomerEntries{},
		},
		{
			name:    "SingleCustomer",
			flagged: []domain.FlaggedEntry{entry(3, klaus, 10000.01)},
			want: []domain.CustomerEntries{
				{Customer: klaus, Entries: []domain.JournalEntry{entry(3, klaus, 10000.01).Entry}},
			},
		},
		{
			name: "GroupedInOrderOfFirstEntry",
			flagged: []domain.FlaggedEntry{
				entry(1, peter, 20000),
				entry(2, klaus, 15000),
				entry(3, peter, 10001),
			},
			want: []domain.CustomerEntries{
				{Customer: peter, Entries: []domain.JournalEntry{entry(1, peter, 20000).Entry, entry(3, peter, 10001).Entry}},
				{Customer: klaus, Entries: []domain.JournalEntry{entry(2, klaus, 15000).Entry}},
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().
				ListLarge(gomock.Any(), gomock.Eq(since), gomock.Eq(domain.LargeTransactionThreshold)).
				Times(1).
				Return(tc.flagged, nil)

			got, err := New(repo).ScanLargeTransactions(context.Background(), since)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ScanLargeTransactions(ctx, %v) returned unexpected difference (-want +got):\n%s", since, diff)
			}
		})
	}
}
