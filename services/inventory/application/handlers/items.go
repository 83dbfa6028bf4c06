package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/linenlady/inventory/pkg/errhttp"
	"github.com/linenlady/inventory/pkg/httpx"
	pkgvalidator "github.com/linenlady/inventory/pkg/validator"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	SKU         string  `json:"sku"         validate:"required,max=64"  example:"SKU-0012"`
	Name        string  `json:"name"        validate:"omitempty,max=255" example:"Vintage Linen Tablecloth"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	Quantity    int32   `json:"quantity"    validate:"gte=0"            example:"3"`
	PriceCents  int64   `json:"price_cents" validate:"gte=0"            example:"4500"`
} // @name CreateItemRequest

// CreateItemHandler handles POST /items.
type CreateItemHandler struct {
	svc *appsvcs.Services
}

// NewCreateItemHandler returns a CreateItemHandler backed by the given services.
func NewCreateItemHandler(svc *appsvcs.Services) *CreateItemHandler {
	return &CreateItemHandler{svc: svc}
}

// Execute creates a draft item directly, without an intake session.
//
//	@Summary		Create item
//	@Description	Creates a new draft inventory item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *CreateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Create(r.Context(), appsvcs.CreateItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// GetItemHandler handles GET /items/{itemID}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		itemID	path		int	true	"Item id"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Items.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// ListItemsHandler handles GET /items.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists items. Drafts are excluded unless include_drafts=true;
// deleted items never appear.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		limit			query		int		false	"Page size (default 20, max 100)"
//	@Param		offset			query		int		false	"Page offset"
//	@Param		include_drafts	query		bool	false	"Include draft items"
//	@Success	200				{object}	ItemListResponse
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	includeDrafts, _ := strconv.ParseBool(q.Get("include_drafts"))

	items, total, err := h.svc.Items.List(r.Context(), repositories.QueryOpts{
		Limit:         limit,
		Offset:        offset,
		IncludeDrafts: includeDrafts,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ItemListResponse{Items: make([]ItemResponse, len(items)), Total: total}
	for i, item := range items {
		resp.Items[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// PatchItemHandler handles PATCH /items/{itemID}.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute applies a partial update. Absent fields stay unchanged; an explicit
// null clears the description and is rejected everywhere else.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		int			true	"Item id"
//	@Param		request	body		object	true	"Fields to change"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{itemID} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	// Decoded directly: tri-state field semantics (absent vs null vs value)
	// live in models.Patch, not in validator tags.
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.Items.Update(r.Context(), id, &patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler handles DELETE /items/{itemID}.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute soft-deletes the item. Repeating the call is a no-op.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		itemID	path	int	true	"Item id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.Items.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UndeleteItemHandler handles POST /items/{itemID}/undelete.
type UndeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewUndeleteItemHandler returns an UndeleteItemHandler backed by the given services.
func NewUndeleteItemHandler(svc *appsvcs.Services) *UndeleteItemHandler {
	return &UndeleteItemHandler{svc: svc}
}

// Execute restores a soft-deleted item.
//
//	@Summary	Undelete item
//	@Tags		items
//	@Produce	json
//	@Param		itemID	path		int	true	"Item id"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{itemID}/undelete [post]
func (h *UndeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Items.Undelete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// PublishItemRequest is the optional request body for POST /items/{itemID}/publish.
// ForcePrimaryImage defaults to true; send an explicit false to publish
// without promoting a primary image.
type PublishItemRequest struct {
	ForcePrimaryImage bool `json:"force_primary_image"`
} // @name PublishItemRequest

// PublishItemHandler handles POST /items/{itemID}/publish.
type PublishItemHandler struct {
	svc *appsvcs.Services
}

// NewPublishItemHandler returns a PublishItemHandler backed by the given services.
func NewPublishItemHandler(svc *appsvcs.Services) *PublishItemHandler {
	return &PublishItemHandler{svc: svc}
}

// Execute publishes a draft item after checking preconditions: a real name,
// a positive price and at least one image. Unless the caller opts out, an
// item with images but no primary gets one promoted during publish.
//
//	@Summary	Publish item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		int					true	"Item id"
//	@Param		request	body		PublishItemRequest	false	"Publish options"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{itemID}/publish [post]
func (h *PublishItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	// Body is optional. Primary promotion defaults to on; an absent body or
	// an omitted field keeps the default.
	req := PublishItemRequest{ForcePrimaryImage: true}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	item, err := h.svc.Items.Publish(r.Context(), id, req.ForcePrimaryImage)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// UnpublishItemHandler handles POST /items/{itemID}/unpublish.
type UnpublishItemHandler struct {
	svc *appsvcs.Services
}

// NewUnpublishItemHandler returns an UnpublishItemHandler backed by the given services.
func NewUnpublishItemHandler(svc *appsvcs.Services) *UnpublishItemHandler {
	return &UnpublishItemHandler{svc: svc}
}

// Execute reverts a published item to draft.
//
//	@Summary	Unpublish item
//	@Tags		items
//	@Produce	json
//	@Param		itemID	path		int	true	"Item id"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{itemID}/unpublish [post]
func (h *UnpublishItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.Items.Unpublish(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
