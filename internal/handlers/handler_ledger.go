package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// ledgerHandler exposes direct reads over the append-only ledger.
type ledgerHandler struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

func newLedgerHandler(ledgerRepo portsrepo.LedgerRepositoryFacade) *ledgerHandler {
	return &ledgerHandler{ledgerRepo: ledgerRepo}
}

// registerLedgerRoutes registers ledger specific routes.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerRepo portsrepo.LedgerRepositoryFacade) {
	h := newLedgerHandler(ledgerRepo)

	ledger := group.Group("/ledger")
	{
		ledger.GET("/accounts/:accountNumber", h.getRowsByAccountNumber)
		ledger.GET("/entries/:entryID", h.getRowsByEntry)
	}
}

// getRowsByAccountNumber godoc
// @Summary Get ledger rows for an account number
// @Description Returns the account's audit trail with running balances, oldest first.
// @Tags ledger
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {array} dto.LedgerRowResponse
// @Router /ledger/accounts/{accountNumber} [get]
func (h *ledgerHandler) getRowsByAccountNumber(c *gin.Context) {
	rows, err := h.ledgerRepo.FindRowsByAccountNumber(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerRowResponses(rows))
}

// getRowsByEntry godoc
// @Summary Get the ledger rows one entry produced
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {array} dto.LedgerRowResponse
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getRowsByEntry(c *gin.Context) {
	rows, err := h.ledgerRepo.FindRowsByEntryID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerRowResponses(rows))
}
