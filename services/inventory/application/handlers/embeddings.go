package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/linenlady/inventory/pkg/errhttp"
	"github.com/linenlady/inventory/pkg/httpx"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
)

// RefreshEmbeddingRequest is the request body for POST /items/{itemID}/embedding/refresh.
type RefreshEmbeddingRequest struct {
	Purpose string `json:"purpose" validate:"omitempty,max=64" example:"search"`
	Force   bool   `json:"force"`
} // @name RefreshEmbeddingRequest

// RefreshEmbeddingHandler handles POST /items/{itemID}/embedding/refresh.
type RefreshEmbeddingHandler struct {
	svc *appsvcs.Services
}

// NewRefreshEmbeddingHandler returns a RefreshEmbeddingHandler backed by the given services.
func NewRefreshEmbeddingHandler(svc *appsvcs.Services) *RefreshEmbeddingHandler {
	return &RefreshEmbeddingHandler{svc: svc}
}

// Execute recomputes the item's embedding when its text changed since the
// stored vector. Unchanged text returns outcome=unchanged without calling the
// embedding API; force=true recomputes regardless.
//
//	@Summary	Refresh item embedding
//	@Tags		embeddings
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		int						true	"Item id"
//	@Param		force	query		bool					false	"Recompute even when the source text is unchanged"
//	@Param		request	body		RefreshEmbeddingRequest	false	"Refresh options"
//	@Success	200		{object}	EmbeddingResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/items/{itemID}/embedding/refresh [post]
func (h *RefreshEmbeddingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	// The body is optional; force may also arrive as a query parameter.
	var req RefreshEmbeddingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if r.URL.Query().Get("force") == "true" {
		req.Force = true
	}

	rec, outcome, err := h.svc.Embeddings.Refresh(r.Context(), id, req.Purpose, req.Force)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, EmbeddingResponse{
		ItemID:      rec.ItemID,
		Purpose:     rec.Purpose,
		Model:       rec.Model,
		Dimensions:  rec.Dimensions,
		ContentHash: rec.ContentHash,
		Outcome:     string(outcome),
		UpdatedAt:   rec.UpdatedAt,
	})
}
