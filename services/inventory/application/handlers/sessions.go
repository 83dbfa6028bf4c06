package handlers

import (
	"net/http"

	"github.com/linenlady/inventory/pkg/auth"
	"github.com/linenlady/inventory/pkg/errhttp"
	"github.com/linenlady/inventory/pkg/httpx"
	pkgvalidator "github.com/linenlady/inventory/pkg/validator"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// CreateSessionRequest is the request body for POST /intake/sessions.
type CreateSessionRequest struct {
	Source string `json:"source" validate:"omitempty,max=64" example:"mobile"`
} // @name CreateSessionRequest

// CreateSessionHandler handles POST /intake/sessions.
type CreateSessionHandler struct {
	svc *appsvcs.Services
}

// NewCreateSessionHandler returns a CreateSessionHandler backed by the given services.
func NewCreateSessionHandler(svc *appsvcs.Services) *CreateSessionHandler {
	return &CreateSessionHandler{svc: svc}
}

// Execute opens an intake session for the photograph-first flow.
//
//	@Summary	Create intake session
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateSessionRequest	false	"Session options"
//	@Success	201		{object}	SessionResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/intake/sessions [post]
func (h *CreateSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSessionRequest](w, r)
	if !ok {
		return
	}

	session, err := h.svc.Sessions.Create(r.Context(), auth.MaybeUserID(r.Context()), req.Source)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSessionResponse(session))
}

// GetSessionHandler handles GET /intake/sessions/{sessionID}.
type GetSessionHandler struct {
	svc *appsvcs.Services
}

// NewGetSessionHandler returns a GetSessionHandler backed by the given services.
func NewGetSessionHandler(svc *appsvcs.Services) *GetSessionHandler {
	return &GetSessionHandler{svc: svc}
}

// Execute returns the session in any state, including terminal ones.
//
//	@Summary	Get intake session
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionID	path		int	true	"Session id"
//	@Success	200			{object}	SessionResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID} [get]
func (h *GetSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}

	session, err := h.svc.Sessions.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSessionResponse(session))
}

// AttachPhotoRequest is the request body for POST /intake/sessions/{sessionID}/photos.
type AttachPhotoRequest struct {
	BlobPath    string  `json:"blob_path"    validate:"required,max=512" example:"intake/123e4567-e89b-12d3-a456-426614174000/001.jpg"`
	SortOrder   int32   `json:"sort_order"   validate:"gte=1"            example:"1"`
	IsPrimary   bool    `json:"is_primary"`
	ContentHash *string `json:"content_hash" validate:"omitempty,max=128"`
} // @name AttachPhotoRequest

// AttachPhotoHandler handles POST /intake/sessions/{sessionID}/photos.
type AttachPhotoHandler struct {
	svc *appsvcs.Services
}

// NewAttachPhotoHandler returns an AttachPhotoHandler backed by the given services.
func NewAttachPhotoHandler(svc *appsvcs.Services) *AttachPhotoHandler {
	return &AttachPhotoHandler{svc: svc}
}

// Execute records an uploaded photo on an Open session. Re-sending the same
// blob path updates the record, so upload confirmations can be retried.
//
//	@Summary	Attach photo
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		sessionID	path		int					true	"Session id"
//	@Param		request		body		AttachPhotoRequest	true	"Photo to record"
//	@Success	201			{object}	PhotoResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID}/photos [post]
func (h *AttachPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AttachPhotoRequest](w, r)
	if !ok {
		return
	}

	photo, err := h.svc.Sessions.AttachPhoto(r.Context(), id, repositories.AttachPhotoParams{
		BlobPath:    req.BlobPath,
		SortOrder:   req.SortOrder,
		IsPrimary:   req.IsPrimary,
		ContentHash: req.ContentHash,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toPhotoResponse(photo))
}

// ListPhotosHandler handles GET /intake/sessions/{sessionID}/photos.
type ListPhotosHandler struct {
	svc *appsvcs.Services
}

// NewListPhotosHandler returns a ListPhotosHandler backed by the given services.
func NewListPhotosHandler(svc *appsvcs.Services) *ListPhotosHandler {
	return &ListPhotosHandler{svc: svc}
}

// Execute lists the session's photos in display order.
//
//	@Summary	List photos
//	@Tags		sessions
//	@Produce	json
//	@Param		sessionID	path		int	true	"Session id"
//	@Success	200			{array}		PhotoResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID}/photos [get]
func (h *ListPhotosHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}

	photos, err := h.svc.Sessions.ListPhotos(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		resp[i] = toPhotoResponse(p)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// ConsumeSessionRequest is the request body for POST /intake/sessions/{sessionID}/consume.
// All fields are optional defaults for the produced draft item.
type ConsumeSessionRequest struct {
	SKU        string `json:"sku"         validate:"omitempty,max=64"`
	Name       string `json:"name"        validate:"omitempty,max=255"`
	Quantity   int32  `json:"quantity"    validate:"gte=0"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
} // @name ConsumeSessionRequest

// ConsumeSessionResponse reports the produced item and whether this call
// created it (false on idempotent replay).
type ConsumeSessionResponse struct {
	Item    ItemResponse `json:"item"`
	Created bool         `json:"created"`
} // @name ConsumeSessionResponse

// ConsumeSessionHandler handles POST /intake/sessions/{sessionID}/consume.
type ConsumeSessionHandler struct {
	svc *appsvcs.Services
}

// NewConsumeSessionHandler returns a ConsumeSessionHandler backed by the given services.
func NewConsumeSessionHandler(svc *appsvcs.Services) *ConsumeSessionHandler {
	return &ConsumeSessionHandler{svc: svc}
}

// Execute promotes the session into a draft item. Calling it again returns
// the same item with created=false and a 200.
//
//	@Summary	Consume intake session
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		sessionID	path		int						true	"Session id"
//	@Param		request		body		ConsumeSessionRequest	false	"Item defaults"
//	@Success	200			{object}	ConsumeSessionResponse	"Idempotent replay"
//	@Success	201			{object}	ConsumeSessionResponse	"Item created"
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID}/consume [post]
func (h *ConsumeSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ConsumeSessionRequest](w, r)
	if !ok {
		return
	}

	item, created, err := h.svc.Sessions.Consume(r.Context(), id, repositories.ConsumeDefaults{
		SKU:        req.SKU,
		Name:       req.Name,
		Quantity:   req.Quantity,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, ConsumeSessionResponse{Item: toItemResponse(item), Created: created})
}

// AbandonSessionHandler handles POST /intake/sessions/{sessionID}/abandon.
type AbandonSessionHandler struct {
	svc *appsvcs.Services
}

// NewAbandonSessionHandler returns an AbandonSessionHandler backed by the given services.
func NewAbandonSessionHandler(svc *appsvcs.Services) *AbandonSessionHandler {
	return &AbandonSessionHandler{svc: svc}
}

// Execute closes an Open session without producing an item.
//
//	@Summary	Abandon intake session
//	@Tags		sessions
//	@Param		sessionID	path	int	true	"Session id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID}/abandon [post]
func (h *AbandonSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}

	if err := h.svc.Sessions.Abandon(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SessionUploadURLHandler handles POST /intake/sessions/{sessionID}/upload-url.
type SessionUploadURLHandler struct {
	svc *appsvcs.Services
}

// NewSessionUploadURLHandler returns a SessionUploadURLHandler backed by the given services.
func NewSessionUploadURLHandler(svc *appsvcs.Services) *SessionUploadURLHandler {
	return &SessionUploadURLHandler{svc: svc}
}

// Execute issues a presigned PUT URL inside the session's storage namespace.
// Refused once the session is closed or expired.
//
//	@Summary	Issue photo upload URL
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		sessionID	path		int					true	"Session id"
//	@Param		request		body		UploadURLRequest	true	"Target filename"
//	@Success	200			{object}	UploadURLResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/intake/sessions/{sessionID}/upload-url [post]
func (h *SessionUploadURLHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "sessionID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UploadURLRequest](w, r)
	if !ok {
		return
	}

	path, url, err := h.svc.Sessions.IssueUploadURL(r.Context(), id, req.Filename)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UploadURLResponse{Path: path, UploadURL: url})
}
