package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/maplecrest/listings-api/internal/domain/search"
)

// filterHash digests the full filter set so that any two semantically
// different filter combinations map to different keys.
func filterHash(f search.Filters) string {
	data, err := json.Marshal(f)
	if err != nil {
		// Filters is a plain value struct; Marshal cannot fail on it.
		data = []byte(fmt.Sprintf("%+v", f))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// SearchKey derives the cache key for one search page.
func SearchKey(f search.Filters, page, limit int, sort search.Sort) string {
	return fmt.Sprintf("search:%s:%d:%d:%s", filterHash(f), page, limit, sort)
}

// MapKey derives the cache key for a map query.
func MapKey(f search.Filters, limit int) string {
	return fmt.Sprintf("map:%s:%d", filterHash(f), limit)
}

// DetailKey derives the cache key for a listing detail view.
func DetailKey(listingKey string) string {
	return "detail:" + listingKey
}

// MediaKey derives the cache key for a listing's media set.
func MediaKey(listingKey, size string) string {
	if size == "" {
		size = "all"
	}
	return fmt.Sprintf("media:%s:%s", listingKey, size)
}

// SimilarKey derives the cache key for a similar-listings view.
func SimilarKey(listingKey string, limit int) string {
	return fmt.Sprintf("similar:%s:%d", listingKey, limit)
}

// FeaturedKey derives the cache key for an office's featured listings.
func FeaturedKey(officeKey, propertyType string, limit int, transactionType string) string {
	if propertyType == "" {
		propertyType = "all"
	}
	if transactionType == "" {
		transactionType = "all"
	}
	return fmt.Sprintf("featured:%s:%s:%d:%s", officeKey, propertyType, limit, transactionType)
}
