package media

import "sort"

// SizeThumbnail is the categorical size bucket used for thumbnail selection.
const SizeThumbnail = "Thumbnail"

// Item is one image or asset attached to a listing via ResourceRecordKey.
type Item struct {
	MediaKey             string  `json:"media_key"`
	ResourceRecordKey    string  `json:"resource_record_key"`
	MediaURL             *string `json:"media_url"`
	MediaCategory        *string `json:"media_category"`
	MediaType            *string `json:"media_type"`
	Order                int     `json:"order"`
	PreferredPhotoYN     *bool   `json:"preferred_photo_yn"`
	ImageSizeDescription *string `json:"image_size_description"`
}

// Preferred reports whether the item carries the preferred-photo flag.
func (i Item) Preferred() bool {
	return i.PreferredPhotoYN != nil && *i.PreferredPhotoYN
}

// Rank sorts items into display order: preferred photos first, then by
// ascending Order. Ties keep their incoming order.
func Rank(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		pa, pb := items[a].Preferred(), items[b].Preferred()
		if pa != pb {
			return pa
		}
		return items[a].Order < items[b].Order
	})
}
