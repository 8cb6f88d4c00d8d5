package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

type ledgerStub struct {
	balances map[string]uint64
}

func newLedgerStub() *ledgerStub {
	return &ledgerStub{balances: map[string]uint64{}}
}

func (s *ledgerStub) key(owner, mint string) string { return owner + "/" + mint }

func (s *ledgerStub) EnsureAccount(_ context.Context, owner, mint string) error {
	if _, ok := s.balances[s.key(owner, mint)]; !ok {
		s.balances[s.key(owner, mint)] = 0
	}
	return nil
}

func (s *ledgerStub) Balance(_ context.Context, owner, mint string) (uint64, error) {
	return s.balances[s.key(owner, mint)], nil
}

func (s *ledgerStub) Transfer(_ context.Context, from, to, mint, authority string, amount uint64) error {
	if authority != from {
		return fmt.Errorf("authority %q cannot move funds of %q", authority, from)
	}
	if s.balances[s.key(from, mint)] < amount {
		return fmt.Errorf("insufficient balance for %q", from)
	}
	s.balances[s.key(from, mint)] -= amount
	s.balances[s.key(to, mint)] += amount
	return nil
}

func (s *ledgerStub) Deposit(_ context.Context, owner, mint string, amount uint64) error {
	s.balances[s.key(owner, mint)] += amount
	return nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type swapHarness struct {
	router     *gin.Engine
	ledger     *ledgerStub
	nftRepo    *nftRepoStub
	poolRepo   *poolRepoStub
	pool       *entities.LiquidityPool
	collection *entities.Collection
}

func newSwapHarness(t *testing.T, caller string, now int64) *swapHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	platformRepo := &platformRepoStub{config: &entities.PlatformConfig{
		ID:               uuid.New(),
		Authority:        "platform-authority",
		PlatformFeeBps:   200,
		PlatformTreasury: "platform-treasury",
	}}

	projectRepo := newProjectRepoStub()
	project := &entities.Project{
		ID:              uuid.New(),
		ProjectID:       "proj-1",
		Authority:       "authority-1",
		ProjectTreasury: "proj-treasury",
		RoyaltyWallet:   null.StringFrom("royalty-wallet"),
		RoyaltyBps:      500,
		IsActive:        true,
	}
	projectRepo.byProjectID["proj-1"] = project

	collectionRepo := newCollectionRepoStub()
	collection := &entities.Collection{
		ID:           uuid.New(),
		ProjectID:    project.ID,
		CollectionID: "coll-1",
		MetadataURI:  "ipfs://collection",
		TokenMint:    null.StringFrom("mint-1"),
	}
	collectionRepo.byID[collection.ID] = collection

	poolRepo := newPoolRepoStub()
	pool := &entities.LiquidityPool{
		ID:                    uuid.New(),
		ProjectID:             project.ID,
		TokenMint:             "mint-1",
		OraclePriceUsd:        null.Uint64From(2_000_000),
		OraclePriceLastUpdate: now,
		PriceSource:           entities.PriceSourceManual,
		LastActivity:          now,
	}
	pool.LpTokenAccount = pool.CustodyAuthority()
	poolRepo.byProject[project.ID] = pool

	nftRepo := newNftRepoStub()
	ledger := newLedgerStub()

	uc := usecases.NewSwapUsecase(platformRepo, projectRepo, collectionRepo, poolRepo, nftRepo, ledger, uowStub{}, clockwork.NewFakeClockAt(time.Unix(now, 0)))
	h := NewSwapHandler(uc)

	r := gin.New()
	r.POST("/swaps", withCaller(caller), h.SwapTokenForNft)
	r.POST("/nfts/:mint/redeem", withCaller(caller), h.RedeemNftForToken)
	r.GET("/nfts/:mint/cooldown", h.GetRemainingCooldown)

	return &swapHarness{router: r, ledger: ledger, nftRepo: nftRepo, poolRepo: poolRepo, pool: pool, collection: collection}
}

func TestSwapHandler_SwapAndRedeem(t *testing.T) {
	now := int64(1_700_000_000)
	h := newSwapHarness(t, "wallet-1", now)
	h.ledger.balances["wallet-1/mint-1"] = 5_000_000_000

	body := []byte(`{"projectId":"proj-1","collectionId":"coll-1","tokenAmount":1000000000}`)
	req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("swap: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	if got := h.ledger.balances["wallet-1/mint-1"]; got != 4_000_000_000 {
		t.Fatalf("unexpected caller balance after swap: %d", got)
	}
	if got := h.ledger.balances["platform-treasury/mint-1"]; got != 20_000_000 {
		t.Fatalf("unexpected platform fee: %d", got)
	}
	if got := h.ledger.balances["royalty-wallet/mint-1"]; got != 50_000_000 {
		t.Fatalf("unexpected royalty fee: %d", got)
	}
	if len(h.nftRepo.byMint) != 1 {
		t.Fatalf("expected one minted nft, got %d", len(h.nftRepo.byMint))
	}

	var mint string
	for m := range h.nftRepo.byMint {
		mint = m
	}

	// Pool only holds the project remainder; top up so the fixed
	// redemption unit is covered.
	h.ledger.balances[h.pool.CustodyAuthority()+"/mint-1"] = 2_000_000_000

	req = httptest.NewRequest(http.MethodPost, "/nfts/"+mint+"/redeem", nil)
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("redeem: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if len(h.nftRepo.byMint) != 0 {
		t.Fatal("expected nft record to be deleted after redemption")
	}
}

func TestSwapHandler_Swap_InsufficientBalance(t *testing.T) {
	now := int64(1_700_000_000)
	h := newSwapHarness(t, "wallet-1", now)
	h.ledger.balances["wallet-1/mint-1"] = 10

	body := []byte(`{"projectId":"proj-1","collectionId":"coll-1","tokenAmount":1000000000}`)
	req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSwapHandler_Cooldown(t *testing.T) {
	now := int64(1_700_000_000)
	h := newSwapHarness(t, "wallet-1", now)
	h.nftRepo.byMint["mint-x"] = &entities.NftData{
		ID:            uuid.New(),
		Owner:         "wallet-1",
		Mint:          "mint-x",
		CooldownEndTs: null.Int64From(now + 120),
	}

	req := httptest.NewRequest(http.MethodGet, "/nfts/mint-x/cooldown", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"remainingCooldown":120`)) {
		t.Fatalf("unexpected cooldown response: %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/nfts/missing/cooldown", nil)
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSwapHandler_Redeem_InCooldown(t *testing.T) {
	now := int64(1_700_000_000)
	h := newSwapHarness(t, "wallet-1", now)
	h.nftRepo.byMint["mint-x"] = &entities.NftData{
		ID:            uuid.New(),
		Owner:         "wallet-1",
		Mint:          "mint-x",
		CollectionID:  h.collection.ID,
		CooldownEndTs: null.Int64From(now + 120),
	}

	req := httptest.NewRequest(http.MethodPost, "/nfts/mint-x/redeem", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}
