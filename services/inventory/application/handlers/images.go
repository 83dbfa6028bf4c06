package handlers

import (
	"net/http"

	"github.com/linenlady/inventory/pkg/errhttp"
	"github.com/linenlady/inventory/pkg/httpx"
	pkgvalidator "github.com/linenlady/inventory/pkg/validator"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// AttachImageRequest is the request body for POST /items/{itemID}/images.
// Path must lie inside the item's storage namespace.
type AttachImageRequest struct {
	Path      string `json:"path"       validate:"required,max=512" example:"items/123e4567-e89b-12d3-a456-426614174000/front.jpg"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int32  `json:"sort_order" validate:"gte=0"` // 0 = auto-assign
} // @name AttachImageRequest

// AttachImageHandler handles POST /items/{itemID}/images.
type AttachImageHandler struct {
	svc *appsvcs.Services
}

// NewAttachImageHandler returns an AttachImageHandler backed by the given services.
func NewAttachImageHandler(svc *appsvcs.Services) *AttachImageHandler {
	return &AttachImageHandler{svc: svc}
}

// Execute attaches an already-uploaded image to the item. The first image of
// an item always becomes primary.
//
//	@Summary	Attach image
//	@Tags		images
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		int					true	"Item id"
//	@Param		request	body		AttachImageRequest	true	"Image to attach"
//	@Success	201		{object}	ImageResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{itemID}/images [post]
func (h *AttachImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AttachImageRequest](w, r)
	if !ok {
		return
	}

	img, err := h.svc.Images.Attach(r.Context(), itemID, repositories.AttachImageParams{
		Path:      req.Path,
		IsPrimary: req.IsPrimary,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toImageResponse(img))
}

// ListImagesHandler handles GET /items/{itemID}/images.
type ListImagesHandler struct {
	svc *appsvcs.Services
}

// NewListImagesHandler returns a ListImagesHandler backed by the given services.
func NewListImagesHandler(svc *appsvcs.Services) *ListImagesHandler {
	return &ListImagesHandler{svc: svc}
}

// Execute lists the item's images in display order.
//
//	@Summary	List images
//	@Tags		images
//	@Produce	json
//	@Param		itemID	path		int	true	"Item id"
//	@Success	200		{array}		ImageResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{itemID}/images [get]
func (h *ListImagesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}

	images, err := h.svc.Images.List(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ImageResponse, len(images))
	for i, img := range images {
		resp[i] = toImageResponse(img)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// RemoveImageHandler handles DELETE /items/{itemID}/images/{imageID}.
type RemoveImageHandler struct {
	svc *appsvcs.Services
}

// NewRemoveImageHandler returns a RemoveImageHandler backed by the given services.
func NewRemoveImageHandler(svc *appsvcs.Services) *RemoveImageHandler {
	return &RemoveImageHandler{svc: svc}
}

// Execute detaches the image. Removing the primary promotes the next image in
// display order within the same transaction.
//
//	@Summary	Remove image
//	@Tags		images
//	@Param		itemID	path	int	true	"Item id"
//	@Param		imageID	path	int	true	"Image id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{itemID}/images/{imageID} [delete]
func (h *RemoveImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}
	imageID, ok := idParam(w, r, "imageID")
	if !ok {
		return
	}

	if _, err := h.svc.Images.Remove(r.Context(), itemID, imageID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadURLRequest is the request body for the upload-url endpoints.
type UploadURLRequest struct {
	Filename string `json:"filename" validate:"required,max=200" example:"front.jpg"`
} // @name UploadURLRequest

// ItemUploadURLHandler handles POST /items/{itemID}/images/upload-url.
type ItemUploadURLHandler struct {
	svc *appsvcs.Services
}

// NewItemUploadURLHandler returns an ItemUploadURLHandler backed by the given services.
func NewItemUploadURLHandler(svc *appsvcs.Services) *ItemUploadURLHandler {
	return &ItemUploadURLHandler{svc: svc}
}

// Execute issues a presigned PUT URL inside the item's storage namespace. The
// client uploads directly to object storage, then attaches the returned path.
//
//	@Summary	Issue image upload URL
//	@Tags		images
//	@Accept		json
//	@Produce	json
//	@Param		itemID	path		int					true	"Item id"
//	@Param		request	body		UploadURLRequest	true	"Target filename"
//	@Success	200		{object}	UploadURLResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{itemID}/images/upload-url [post]
func (h *ItemUploadURLHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "itemID")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UploadURLRequest](w, r)
	if !ok {
		return
	}

	path, url, err := h.svc.Images.IssueUploadURL(r.Context(), itemID, req.Filename)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UploadURLResponse{Path: path, UploadURL: url})
}
