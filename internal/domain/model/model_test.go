package model

import "testing"

func TestTierRate(t *testing.T) {
	tier := Tier{Coins: 12000, USD: 25}
	if got, want := tier.Rate(), 25.0/12000.0; got != want {
		t.Fatalf("expected rate %v, got %v", want, got)
	}
	if (Tier{}).Rate() != 0 {
		t.Fatal("zero tier must have zero rate")
	}
}

func TestTransferAmountAndBalance(t *testing.T) {
	transfer := &Transfer{
		Kind:     TransferKindEntryPass,
		SenderID: 10,
		Entries: []LedgerEntry{
			{Account: 10, Delta: -300},
			{Account: 20, Delta: 225},
			{Account: 1, Delta: 75},
		},
	}

	if got := transfer.Amount(); got != 300 {
		t.Fatalf("expected amount 300, got %d", got)
	}
	if !transfer.Balanced() {
		t.Fatal("expected entry deltas to sum to zero")
	}

	transfer.Entries[2].Delta = 80
	if transfer.Balanced() {
		t.Fatal("expected unbalanced transfer to be detected")
	}
}

func TestDefaultCreditScore(t *testing.T) {
	score := DefaultCreditScore(42)
	if score.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", score.UserID)
	}
	if score.Score != DefaultCreditScoreValue || score.Tier != DefaultCreditTier {
		t.Fatalf("unexpected default score %+v", score)
	}
	if score.Trend7d != 0 || score.Trend30d != 0 {
		t.Fatalf("expected zero trends, got %+v", score)
	}
	if !score.UpdatedAt.IsZero() {
		t.Fatal("synthesized score must not carry an update timestamp")
	}
}
