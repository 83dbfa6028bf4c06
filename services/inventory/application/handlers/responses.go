// Package handlers contains the HTTP handlers for the inventory API. Each
// endpoint is its own handler struct with an Execute method; request decoding
// and validation run before any service call.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/linenlady/inventory/pkg/httpx"
	"github.com/linenlady/inventory/services/inventory/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ItemResponse is the item representation returned by all item endpoints.
type ItemResponse struct {
	ID          int64     `json:"id"          example:"42"`
	PublicID    uuid.UUID `json:"public_id"   example:"123e4567-e89b-12d3-a456-426614174000"`
	SKU         string    `json:"sku"         example:"SKU-0012"`
	Name        string    `json:"name"        example:"Vintage Linen Tablecloth"`
	Description *string   `json:"description,omitempty"`
	Quantity    int32     `json:"quantity"    example:"3"`
	PriceCents  int64     `json:"price_cents" example:"4500"`
	IsDraft     bool      `json:"is_draft"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name ItemResponse

// ItemListResponse is a page of items plus the total count.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"128"`
} // @name ItemListResponse

// ImageResponse is the image representation returned by image endpoints.
type ImageResponse struct {
	ID        int64     `json:"id"         example:"7"`
	ItemID    int64     `json:"item_id"    example:"42"`
	Path      string    `json:"path"       example:"items/123e4567-e89b-12d3-a456-426614174000/front.jpg"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int32     `json:"sort_order" example:"1"`
	CreatedAt time.Time `json:"created_at"`
} // @name ImageResponse

// SessionResponse is the intake session representation.
type SessionResponse struct {
	ID        int64     `json:"id"         example:"9"`
	PublicID  uuid.UUID `json:"public_id"`
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	Source    string    `json:"source"     example:"mobile"`
	Status    string    `json:"status"     example:"open"`
	ExpiresAt time.Time `json:"expires_at"`
	ItemID    *int64    `json:"item_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
} // @name SessionResponse

// PhotoResponse is the intake photo representation.
type PhotoResponse struct {
	ID          int64     `json:"id"         example:"3"`
	SessionID   int64     `json:"session_id" example:"9"`
	BlobPath    string    `json:"blob_path"  example:"intake/123e4567-e89b-12d3-a456-426614174000/001.jpg"`
	SortOrder   int32     `json:"sort_order" example:"1"`
	IsPrimary   bool      `json:"is_primary"`
	ContentHash *string   `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
} // @name PhotoResponse

// UploadURLResponse carries a presigned PUT URL and the storage path the
// client must later reference when attaching.
type UploadURLResponse struct {
	Path      string `json:"path"       example:"items/123e4567-e89b-12d3-a456-426614174000/front.jpg"`
	UploadURL string `json:"upload_url"`
} // @name UploadURLResponse

// EmbeddingResponse reports an embedding refresh result. The vector itself is
// not returned.
type EmbeddingResponse struct {
	ItemID      int64     `json:"item_id"      example:"42"`
	Purpose     string    `json:"purpose"      example:"search"`
	Model       string    `json:"model"        example:"text-embedding-3-small"`
	Dimensions  int32     `json:"dimensions"   example:"1536"`
	ContentHash string    `json:"content_hash"`
	Outcome     string    `json:"outcome"      example:"updated"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name EmbeddingResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		PublicID:    item.PublicID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		PriceCents:  item.PriceCents,
		IsDraft:     item.IsDraft,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toImageResponse(img *models.Image) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		ItemID:    img.ItemID,
		Path:      img.Path,
		IsPrimary: img.IsPrimary,
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
}

func toSessionResponse(s *models.IntakeSession) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		PublicID:  s.PublicID,
		CreatedBy: s.CreatedBy,
		Source:    s.Source,
		Status:    string(s.Status),
		ExpiresAt: s.ExpiresAt,
		ItemID:    s.ItemID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toPhotoResponse(p *models.IntakePhoto) PhotoResponse {
	return PhotoResponse{
		ID:          p.ID,
		SessionID:   p.SessionID,
		BlobPath:    p.BlobPath,
		SortOrder:   p.SortOrder,
		IsPrimary:   p.IsPrimary,
		ContentHash: p.ContentHash,
		CreatedAt:   p.CreatedAt,
	}
}

// idParam parses a chi URL parameter as a positive int64. Non-numeric or
// non-positive values get a 400 written and ok=false.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}
