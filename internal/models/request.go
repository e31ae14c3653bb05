package models

// UploadImageRequest is the multipart form of POST /api/images. The snake_case
// names are the form fields the original frontend sends.
type UploadImageRequest struct {
	Category    string `form:"category"`
	ImageType   string `form:"image_type"`
	ItemID      string `form:"itemId"`
	ItemIDSnake string `form:"item_id"`
}

// CategoryValue returns category, falling back to image_type.
func (r UploadImageRequest) CategoryValue() string {
	if r.Category != "" {
		return r.Category
	}
	return r.ImageType
}

func (r UploadImageRequest) ItemIDValue() string {
	if r.ItemID != "" {
		return r.ItemID
	}
	return r.ItemIDSnake
}

// ListImagesQuery filters GET /api/images.
type ListImagesQuery struct {
	Category string `form:"category" binding:"required"`
	ItemID   string `form:"itemId"`
}
