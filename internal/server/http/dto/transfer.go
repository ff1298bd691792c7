package dto

// TipRequest describes a tip payload.
type TipRequest struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Message     string `json:"message"`
}

// EntryPassRequest describes an entry pass purchase payload.
type EntryPassRequest struct {
	BroadcasterID int64  `json:"broadcaster_id" binding:"required"`
	StreamID      string `json:"stream_id"`
}

// TransferResponse reports the outcome of an economic operation.
type TransferResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// EntryPassStatusResponse reports whether a pass is currently valid.
type EntryPassStatusResponse struct {
	Valid bool `json:"valid"`
}

// BalanceResponse reports the user's coin balance.
type BalanceResponse struct {
	Coins int64 `json:"coins"`
}
