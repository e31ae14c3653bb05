package models

import (
	"strings"
	"time"
)

// ImageCategory classifies an uploaded image.
type ImageCategory string

const (
	CategoryEquipment ImageCategory = "equipment"
	CategoryEMoped    ImageCategory = "emoped"
	CategoryBattery   ImageCategory = "battery"
)

// ParseImageCategory accepts the canonical names plus "e-moped".
func ParseImageCategory(s string) (ImageCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equipment":
		return CategoryEquipment, true
	case "emoped", "e-moped":
		return CategoryEMoped, true
	case "battery":
		return CategoryBattery, true
	}
	return "", false
}

// ImageAsset is the metadata half of an uploaded image. StoragePath points at
// the bytes held by the blob store.
type ImageAsset struct {
	ID           string        `json:"id" bson:"id"`
	Category     ImageCategory `json:"type" bson:"type"`
	ItemID       string        `json:"item_id,omitempty" bson:"item_id,omitempty"`
	Filename     string        `json:"filename" bson:"filename"`
	OriginalName string        `json:"original_name" bson:"original_name"`
	MimeType     string        `json:"mimetype" bson:"mimetype"`
	SizeBytes    int64         `json:"size" bson:"size"`
	StoragePath  string        `json:"-" bson:"path"`
	UploadedAt   time.Time     `json:"uploaded_at" bson:"uploaded_at"`
}
