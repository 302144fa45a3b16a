package dto

import (
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one proposed line of a new journal entry.
// Exactly one of Debit/Credit must be strictly positive; the validator
// collects violations rather than relying on binding alone.
type CreateEntryLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateEntryRequest defines the data needed to create a journal entry.
// Date defaults to today when omitted.
type CreateEntryRequest struct {
	Date        *time.Time               `json:"date"`
	Description string                   `json:"description"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required"`
}

// RejectEntryRequest carries the mandatory rejection reason.
type RejectEntryRequest struct {
	Reason string `json:"reason" binding:"required,notblank"`
}

// EntryLineResponse mirrors domain.JournalLine for API output.
type EntryLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// EntryResponse mirrors domain.JournalEntry for API output.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	Date        time.Time           `json:"date"`
	Status      domain.EntryStatus  `json:"status"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Status    string     `form:"status"` // pending|approved|rejected|all, default pending
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Search    string     `form:"search"`
	Limit     int        `form:"limit,default=20"`
	NextToken *string    `form:"nextToken"`
}

// ListEntriesResponse is a page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalLine to an EntryLineResponse.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		AccountName: line.AccountName,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
	}
}

// ToEntryResponse converts a domain.JournalEntry (with any loaded lines) to an EntryResponse.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     entry.EntryID,
		Date:        entry.EntryDate,
		Status:      entry.Status,
		TotalDebit:  entry.TotalDebit,
		TotalCredit: entry.TotalCredit,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
		CreatedBy:   entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToEntryLineResponse(&entry.Lines[i])
		}
	}
	return resp
}
