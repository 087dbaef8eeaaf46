// Package media implements access to the per-category media tables.
package media

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/maplecrest/listings-api/internal/domain"
	"github.com/maplecrest/listings-api/internal/domain/listing"
	dommedia "github.com/maplecrest/listings-api/internal/domain/media"
	"github.com/maplecrest/listings-api/internal/logger"
	"github.com/maplecrest/listings-api/internal/storage"

	"go.uber.org/zap"
)

const columns = `media_key, resource_record_key, media_url, media_category,
	media_type, "order", preferred_photo_yn, image_size_description`

// Repository queries both media tables, choosing by listing category.
type Repository struct {
	db storage.Querier
}

func NewRepository(db storage.Querier) *Repository {
	return &Repository{db: db}
}

func tableFor(cat listing.Category) string {
	if cat == listing.Commercial {
		return "commercial_media"
	}
	return "residential_media"
}

// ByListing returns media for one listing in display order: preferred
// photos first, then ascending order. Size and type filters are exact,
// case-insensitive matches.
func (r *Repository) ByListing(ctx context.Context, cat listing.Category, listingKey string, size, mediaType *string, limit int) ([]dommedia.Item, error) {
	table := tableFor(cat)

	conditions := "resource_record_key = $1"
	args := []any{listingKey}
	if size != nil {
		args = append(args, *size)
		conditions += fmt.Sprintf(" AND LOWER(image_size_description) = LOWER($%d)", len(args))
	}
	if mediaType != nil {
		args = append(args, *mediaType)
		conditions += fmt.Sprintf(" AND LOWER(media_type) = LOWER($%d)", len(args))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s
		ORDER BY preferred_photo_yn DESC NULLS LAST, "order" ASC`, columns, table, conditions)
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("media for %s: %w", table, err)
	}
	defer rows.Close()

	return collect(rows, table)
}

// ByKey looks a single media item up by key, residential table first.
// Returns domain.ErrMediaNotFound when the key is in neither table.
func (r *Repository) ByKey(ctx context.Context, mediaKey string) (*dommedia.Item, error) {
	for _, cat := range []listing.Category{listing.Residential, listing.Commercial} {
		table := tableFor(cat)
		query := fmt.Sprintf("SELECT %s FROM %s WHERE media_key = $1", columns, table)

		item, err := scan(r.db.QueryRow(ctx, query, mediaKey))
		if err == nil {
			return &item, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("media by key %s: %w", table, err)
		}
	}
	return nil, fmt.Errorf("media %q: %w", mediaKey, domain.ErrMediaNotFound)
}

// Thumbnail resolves the thumbnail URL for a listing: preferred photo
// first, then lowest order, among thumbnail-sized items with a URL.
// Storage failures degrade to nil so a missing image never fails a search.
func (r *Repository) Thumbnail(ctx context.Context, cat listing.Category, listingKey string) *string {
	table := tableFor(cat)
	query := fmt.Sprintf(`SELECT media_url FROM %s
		WHERE resource_record_key = $1
		  AND image_size_description = $2
		  AND media_url IS NOT NULL
		ORDER BY preferred_photo_yn DESC NULLS LAST, "order" ASC
		LIMIT 1`, table)

	var url *string
	err := r.db.QueryRow(ctx, query, listingKey, dommedia.SizeThumbnail).Scan(&url)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.FromContext(ctx).Warn("thumbnail lookup failed",
				zap.String("listing_key", listingKey),
				zap.Error(err))
		}
		return nil
	}
	return url
}

// DistinctSizes lists the image size descriptions present in the media
// tables, restricted to one category when cat is non-nil.
func (r *Repository) DistinctSizes(ctx context.Context, cat *listing.Category) ([]string, error) {
	return r.distinct(ctx, "image_size_description", cat)
}

// DistinctTypes lists the media types present in the media tables,
// restricted to one category when cat is non-nil.
func (r *Repository) DistinctTypes(ctx context.Context, cat *listing.Category) ([]string, error) {
	return r.distinct(ctx, "media_type", cat)
}

func (r *Repository) distinct(ctx context.Context, column string, cat *listing.Category) ([]string, error) {
	tables := []string{tableFor(listing.Residential), tableFor(listing.Commercial)}
	if cat != nil {
		tables = []string{tableFor(*cat)}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, table := range tables {
		query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s`,
			column, table, column, column)

		rows, err := r.db.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("distinct %s %s: %w", column, table, err)
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, fmt.Errorf("distinct %s %s: %w", column, table, err)
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("distinct %s %s: %w", column, table, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

func collect(rows pgx.Rows, table string) ([]dommedia.Item, error) {
	var out []dommedia.Item
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", table, err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (dommedia.Item, error) {
	var (
		item  dommedia.Item
		order *int
	)
	err := row.Scan(
		&item.MediaKey, &item.ResourceRecordKey, &item.MediaURL,
		&item.MediaCategory, &item.MediaType, &order,
		&item.PreferredPhotoYN, &item.ImageSizeDescription,
	)
	if err != nil {
		return dommedia.Item{}, err
	}
	if order != nil {
		item.Order = *order
	}
	return item, nil
}
