package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

type traitTypeRepoStub struct {
	types []*entities.TraitType
}

func (s *traitTypeRepoStub) Create(_ context.Context, traitType *entities.TraitType) error {
	s.types = append(s.types, traitType)
	return nil
}

func (s *traitTypeRepoStub) GetByName(_ context.Context, collectionID uuid.UUID, name string) (*entities.TraitType, error) {
	for _, tt := range s.types {
		if tt.CollectionID == collectionID && tt.Name == name {
			return tt, nil
		}
	}
	return nil, domainerrors.ErrTraitTypeNotFound
}

func (s *traitTypeRepoStub) ListByCollection(_ context.Context, collectionID uuid.UUID) ([]*entities.TraitType, error) {
	out := make([]*entities.TraitType, 0, len(s.types))
	for _, tt := range s.types {
		if tt.CollectionID == collectionID {
			out = append(out, tt)
		}
	}
	return out, nil
}

func (s *traitTypeRepoStub) Update(context.Context, *entities.TraitType) error { return nil }

type traitConfigRepoStub struct {
	byCollection map[uuid.UUID]*entities.CollectionTraitConfig
}

func newTraitConfigRepoStub() *traitConfigRepoStub {
	return &traitConfigRepoStub{byCollection: map[uuid.UUID]*entities.CollectionTraitConfig{}}
}

func (s *traitConfigRepoStub) Create(_ context.Context, config *entities.CollectionTraitConfig) error {
	s.byCollection[config.CollectionID] = config
	return nil
}

func (s *traitConfigRepoStub) GetByCollection(_ context.Context, collectionID uuid.UUID) (*entities.CollectionTraitConfig, error) {
	config, ok := s.byCollection[collectionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return config, nil
}

func (s *traitConfigRepoStub) Update(context.Context, *entities.CollectionTraitConfig) error {
	return nil
}

type nftTraitsRepoStub struct {
	byMint map[string]*entities.NftTraits
}

func newNftTraitsRepoStub() *nftTraitsRepoStub {
	return &nftTraitsRepoStub{byMint: map[string]*entities.NftTraits{}}
}

func (s *nftTraitsRepoStub) Create(_ context.Context, traits *entities.NftTraits) error {
	s.byMint[traits.NftMint] = traits
	return nil
}

func (s *nftTraitsRepoStub) GetByNftMint(_ context.Context, nftMint string) (*entities.NftTraits, error) {
	traits, ok := s.byMint[nftMint]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return traits, nil
}

type nftHarness struct {
	router     *gin.Engine
	collection *entities.Collection
	nftRepo    *nftRepoStub
	traitsRepo *nftTraitsRepoStub
}

func newNftHarness(t *testing.T, caller string) *nftHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	collectionRepo := newCollectionRepoStub()
	collection := &entities.Collection{
		ID:           uuid.New(),
		ProjectID:    uuid.New(),
		CollectionID: "coll-1",
		MetadataURI:  "ipfs://collection",
	}
	collectionRepo.byID[collection.ID] = collection

	traitTypeRepo := &traitTypeRepoStub{types: []*entities.TraitType{
		{
			ID:           uuid.New(),
			CollectionID: collection.ID,
			Name:         "Background",
			IsRequired:   true,
			Position:     0,
			Values: []entities.TraitValue{
				{Name: "Red", URIPostfix: "red", RarityWeight: 60},
				{Name: "Blue", URIPostfix: "blue", RarityWeight: 40},
			},
		},
	}}

	traitConfigRepo := newTraitConfigRepoStub()
	traitConfigRepo.byCollection[collection.ID] = &entities.CollectionTraitConfig{
		ID:                    uuid.New(),
		CollectionID:          collection.ID,
		BaseURI:               "ipfs://base",
		AutoGenerationEnabled: true,
		MetadataFormat:        entities.MetadataFormatStandardJson,
	}

	nftRepo := newNftRepoStub()
	traitsRepo := newNftTraitsRepoStub()

	uc := usecases.NewMintUsecase(collectionRepo, traitTypeRepo, traitConfigRepo, nftRepo, traitsRepo, newFusionRepoStub(), uowStub{}, clockwork.NewFakeClock())
	h := NewNftHandler(uc, nftRepo)

	r := gin.New()
	r.POST("/nfts", withCaller(caller), h.MintNft)
	r.POST("/nfts/fuse", withCaller(caller), h.FuseNfts)
	r.GET("/nfts", withCaller(caller), h.ListMyNfts)
	r.GET("/nfts/:mint", h.GetNft)
	r.GET("/nfts/:mint/traits", h.GetNftTraits)

	return &nftHarness{router: r, collection: collection, nftRepo: nftRepo, traitsRepo: traitsRepo}
}

func TestNftHandler_MintAutoGenerated(t *testing.T) {
	h := newNftHarness(t, "wallet-1")

	body := []byte(`{"collectionId":"` + h.collection.ID.String() + `","slot":42}`)
	req := httptest.NewRequest(http.MethodPost, "/nfts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Nft entities.NftData `json:"nft"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal mint response: %v", err)
	}
	if resp.Nft.Owner != "wallet-1" || resp.Nft.FusionLevel != 0 {
		t.Fatalf("unexpected nft: %+v", resp.Nft)
	}
	if _, ok := h.traitsRepo.byMint[resp.Nft.Mint]; !ok {
		t.Fatal("expected trait selection to be stored")
	}

	req = httptest.NewRequest(http.MethodGet, "/nfts/"+resp.Nft.Mint+"/traits", nil)
	w = httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("traits lookup: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"Background"`)) {
		t.Fatalf("unexpected traits response: %s", w.Body.String())
	}
}

func TestNftHandler_MintManualTraits(t *testing.T) {
	h := newNftHarness(t, "wallet-1")

	body := []byte(`{"collectionId":"` + h.collection.ID.String() + `","traits":[{"traitType":"Background","traitValue":"Blue"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/nfts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"rarityScore"`)) {
		t.Fatalf("unexpected mint response: %s", w.Body.String())
	}
}

func TestNftHandler_Mint_InvalidCollectionID(t *testing.T) {
	h := newNftHarness(t, "wallet-1")

	body := []byte(`{"collectionId":"not-a-uuid"}`)
	req := httptest.NewRequest(http.MethodPost, "/nfts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestNftHandler_Fuse_NotActive(t *testing.T) {
	h := newNftHarness(t, "wallet-1")

	body := []byte(`{"collectionId":"` + h.collection.ID.String() + `","parentMints":["m1","m2"]}`)
	req := httptest.NewRequest(http.MethodPost, "/nfts/fuse", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestNftHandler_ListMyNfts(t *testing.T) {
	h := newNftHarness(t, "wallet-1")
	h.nftRepo.byMint["m1"] = &entities.NftData{ID: uuid.New(), Owner: "wallet-1", Mint: "m1"}
	h.nftRepo.byMint["m2"] = &entities.NftData{ID: uuid.New(), Owner: "wallet-2", Mint: "m2"}

	req := httptest.NewRequest(http.MethodGet, "/nfts?page=1&limit=10", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"m1"`)) || bytes.Contains(w.Body.Bytes(), []byte(`"m2"`)) {
		t.Fatalf("unexpected list response: %s", w.Body.String())
	}
}

var _ = null.String{}
