// Package transport serves the explorer pages over HTTP.
package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/api"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

const theme = "dark"

const (
	pageBlocks       = "blocks"
	pageTransactions = "transactions"
	pageAddress      = "address"
	pageMempool      = "mempool"
	pageStatus       = "status"
	pageNotFound     = "not-found"
)

// ExplorerHandler renders explorer pages from the backend services.
type ExplorerHandler struct {
	addresses    AddressService
	blocks       BlockService
	transactions TransactionService
	mempool      MempoolService
	health       HealthService
	network      NetworkSnapshot
	locale       format.Locale
	logger       *zap.Logger
}

// ExplorerServices groups the readers the pages depend on.
type ExplorerServices struct {
	Addresses    AddressService
	Blocks       BlockService
	Transactions TransactionService
	Mempool      MempoolService
	Health       HealthService
	Network      NetworkSnapshot
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(services ExplorerServices, locale format.Locale, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		addresses:    services.Addresses,
		blocks:       services.Blocks,
		transactions: services.Transactions,
		mempool:      services.Mempool,
		health:       services.Health,
		network:      services.Network,
		locale:       locale,
		logger:       logger.Named("explorer_handler"),
	}
}

func (h *ExplorerHandler) newPage(name, tab string) Page {
	page := Page{Page: name, Tab: tab, Theme: theme}
	if n, ok := h.network.NetworkInfo(); ok {
		page.Network = newNetworkView(n, h.locale)
	}
	return page
}

func (h *ExplorerHandler) fail(c *gin.Context, page Page, status int, err error) {
	page.Error = err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error("Page failed", zap.String("page", page.Page), zap.Error(err))
		page.Error = "explorer backend unavailable"
	}
	c.JSON(status, page)
}

// statusFor maps service errors onto page status codes.
func statusFor(err error) int {
	var validationErr *model.ValidationError
	switch {
	case api.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// Home redirects to the blocks page.
func (h *ExplorerHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/blocks")
}

// Blocks shows the block named by ?id= (height or hash), or the tip when
// no id is given and the network snapshot is known.
func (h *ExplorerHandler) Blocks(c *gin.Context) {
	page := h.newPage(pageBlocks, pageBlocks)
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		n, ok := h.network.NetworkInfo()
		if !ok {
			c.JSON(http.StatusOK, page)
			return
		}
		id = strconv.FormatInt(n.LastBlock(), 10)
	}
	id, err := normalizeBlockID(id)
	if err != nil {
		h.fail(c, page, http.StatusBadRequest, err)
		return
	}

	block, err := h.blocks.GetBlock(c.Request.Context(), id)
	if err != nil {
		h.fail(c, page, statusFor(err), err)
		return
	}
	page.Data = newBlockView(block, h.locale)
	c.JSON(http.StatusOK, page)
}

// Transactions shows the transaction named by ?txid=.
func (h *ExplorerHandler) Transactions(c *gin.Context) {
	page := h.newPage(pageTransactions, pageTransactions)
	txid := strings.TrimSpace(c.Query("txid"))
	if txid == "" {
		c.JSON(http.StatusOK, page)
		return
	}
	if err := validateHash(txid); err != nil {
		h.fail(c, page, http.StatusBadRequest, err)
		return
	}

	tx, err := h.transactions.GetTransaction(c.Request.Context(), txid)
	if err != nil {
		h.fail(c, page, statusFor(err), err)
		return
	}
	page.Data = newTransactionView(tx, h.locale)
	c.JSON(http.StatusOK, page)
}

// Address shows the balance of ?address=.
func (h *ExplorerHandler) Address(c *gin.Context) {
	page := h.newPage(pageAddress, pageAddress)
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(http.StatusOK, page)
		return
	}
	n, _ := h.network.NetworkInfo()
	if err := validateAddress(address, n.Params()); err != nil {
		h.fail(c, page, http.StatusBadRequest, err)
		return
	}

	addr, err := h.addresses.GetAddress(c.Request.Context(), address)
	if err != nil {
		h.fail(c, page, statusFor(err), err)
		return
	}
	page.Data = newAddressView(addr, h.locale)
	c.JSON(http.StatusOK, page)
}

func (h *ExplorerHandler) Mempool(c *gin.Context) {
	page := h.newPage(pageMempool, pageMempool)
	mempool, err := h.mempool.GetMempool(c.Request.Context())
	if err != nil {
		h.fail(c, page, statusFor(err), err)
		return
	}
	page.Data = newMempoolView(mempool, h.locale)
	c.JSON(http.StatusOK, page)
}

// Status reports backend health.
func (h *ExplorerHandler) Status(c *gin.Context) {
	page := h.newPage(pageStatus, "")
	health, err := h.health.GetHealth(c.Request.Context())
	if err != nil {
		h.fail(c, page, statusFor(err), err)
		return
	}
	page.Data = newStatusView(health)
	c.JSON(http.StatusOK, page)
}

func (h *ExplorerHandler) NotFound(c *gin.Context) {
	page := h.newPage(pageNotFound, "")
	page.Error = "page not found"
	c.JSON(http.StatusNotFound, page)
}
