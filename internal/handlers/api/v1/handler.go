// Package v1 exposes the character and checkout services as a JSON HTTP
// API for the browser UI
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	"github.com/pixself/pixself-api/internal/orchestrators/character"
	"github.com/pixself/pixself-api/internal/orchestrators/checkout"
)

// Handler serves the v1 HTTP API
type Handler struct {
	character character.Service
	checkout  checkout.Service
	decoder   *schema.Decoder
}

// HandlerConfig holds the dependencies for the Handler
type HandlerConfig struct {
	CharacterService character.Service
	CheckoutService  checkout.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CheckoutService == nil {
		vb.RequiredField("CheckoutService")
	}

	return vb.Build()
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		character: cfg.CharacterService,
		checkout:  cfg.CheckoutService,
		decoder:   decoder,
	}, nil
}

// Register mounts all v1 routes on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/parts", h.handleListParts)
	mux.HandleFunc("GET /api/v1/variants", h.handleListVariants)
	mux.HandleFunc("GET /api/v1/resolve", h.handleResolve)
	mux.HandleFunc("POST /api/v1/render", h.handleRender)
	mux.HandleFunc("POST /api/v1/randomize", h.handleRandomize)
	mux.HandleFunc("POST /api/v1/drafts", h.handleSaveDraft)
	mux.HandleFunc("GET /api/v1/drafts/{session}", h.handleGetDraft)
	mux.HandleFunc("POST /api/v1/discounts/validate", h.handleValidateDiscount)
	mux.HandleFunc("POST /api/v1/orders", h.handleSubmitOrder)
	mux.HandleFunc("POST /api/v1/catalog/refresh", h.handleRefresh)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleListParts(w http.ResponseWriter, r *http.Request) {
	out, err := h.character.ListParts(r.Context(), &character.ListPartsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"parts":  out.Parts,
		"colors": out.Colors,
	})
}

func (h *Handler) handleListVariants(w http.ResponseWriter, r *http.Request) {
	out, err := h.character.ListVariants(r.Context(), &character.ListVariantsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Variants)
}

// resolveQuery is the query shape for GET /api/v1/resolve
type resolveQuery struct {
	Part        string `schema:"part,required"`
	Asset       string `schema:"asset"`
	Color       string `schema:"color"`
	CheckExists bool   `schema:"checkExists"`
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var q resolveQuery
	if err := h.decoder.Decode(&q, r.URL.Query()); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid query: %v", err))
		return
	}

	out, err := h.character.ResolveAsset(r.Context(), &character.ResolveAssetInput{
		Part:        entities.PartKey(q.Part),
		AssetID:     q.Asset,
		Color:       q.Color,
		CheckExists: q.CheckExists,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"path":     out.Path,
		"resolved": out.Resolved,
		"exists":   out.Exists,
	})
}

// renderRequest is the body shape for POST /api/v1/render
type renderRequest struct {
	Selections    entities.SelectionSet `json:"selections"`
	Thumbnail     bool                  `json:"thumbnail"`
	ThumbnailSize int                   `json:"thumbnailSize"`
}

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid body: %v", err))
		return
	}

	out, err := h.character.ComposeCharacter(r.Context(), &character.ComposeInput{
		Selections:    req.Selections,
		Thumbnail:     req.Thumbnail,
		ThumbnailSize: req.ThumbnailSize,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	resp := map[string]any{"dataUrl": out.DataURL}
	if out.ThumbnailPNG != nil {
		resp["thumbnailDataUrl"] = renderDataURL(out.ThumbnailPNG)
	}
	writeJSON(w, http.StatusOK, resp)
}

// randomizeRequest is the body shape for POST /api/v1/randomize
type randomizeRequest struct {
	Seed int64 `json:"seed"`
}

func (h *Handler) handleRandomize(w http.ResponseWriter, r *http.Request) {
	var req randomizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid body: %v", err))
		return
	}

	out, err := h.character.RandomizeSelections(r.Context(), &character.RandomizeInput{Seed: req.Seed})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"selections": out.Selections})
}

// saveDraftRequest is the body shape for POST /api/v1/drafts
type saveDraftRequest struct {
	SessionID  string                `json:"sessionId"`
	Name       string                `json:"name"`
	Selections entities.SelectionSet `json:"selections"`
}

func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid body: %v", err))
		return
	}

	out, err := h.character.SaveDraft(r.Context(), &character.SaveDraftInput{
		SessionID:  req.SessionID,
		Name:       req.Name,
		Selections: req.Selections,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Draft)
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	out, err := h.character.GetDraft(r.Context(), &character.GetDraftInput{
		SessionID: r.PathValue("session"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Draft)
}

// validateDiscountRequest is the body shape for POST /api/v1/discounts/validate
type validateDiscountRequest struct {
	Code  string              `json:"code"`
	Items []entities.CartItem `json:"items"`
}

func (h *Handler) handleValidateDiscount(w http.ResponseWriter, r *http.Request) {
	var req validateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid body: %v", err))
		return
	}

	out, err := h.checkout.ValidateDiscount(r.Context(), &checkout.ValidateDiscountInput{
		Code:  req.Code,
		Items: req.Items,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":          out.Valid,
		"discountAmount": out.DiscountAmount,
		"message":        out.Message,
		"code":           out.Code,
	})
}

// submitOrderRequest is the body shape for POST /api/v1/orders
type submitOrderRequest struct {
	SessionID    string              `json:"sessionId"`
	Customer     entities.Customer   `json:"customer"`
	Items        []entities.CartItem `json:"items"`
	DiscountCode string              `json:"discountCode"`
	ImageDataURL string              `json:"imageDataUrl"`
}

func (h *Handler) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgumentf("invalid body: %v", err))
		return
	}

	imagePNG, err := decodeImageDataURL(req.ImageDataURL)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.checkout.SubmitOrder(r.Context(), &checkout.SubmitOrderInput{
		SessionID:    req.SessionID,
		Customer:     req.Customer,
		Items:        req.Items,
		DiscountCode: req.DiscountCode,
		ImagePNG:     imagePNG,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Order)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	out, err := h.character.RefreshCatalog(r.Context(), &character.RefreshInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"parts": out.Parts})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
