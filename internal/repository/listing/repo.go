// Package listing implements per-category access to the property tables.
// A Repository is bound to one category at construction; the merge logic
// above it composes two of them.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maplecrest/listings-api/internal/domain"
	domlisting "github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/search"
	"github.com/maplecrest/listings-api/internal/storage"
)

const summaryColumns = `listing_key, list_price,
	street_number, street_name, street_suffix, apartment_number, unit_number,
	city_region, county_or_parish, state_or_province, postal_code,
	latitude, longitude,
	bedrooms_total, bathrooms_total_integer, parking_spaces,
	standard_status, transaction_type, property_type, property_sub_type,
	modification_timestamp, original_entry_timestamp`

const detailColumns = summaryColumns + `,
	public_remarks, lot_depth, lot_width, lot_size_units, tax_annual_amount,
	cross_street, zoning_designation, list_office_name, list_office_key,
	virtual_tour_url_unbranded, virtual_tour_url_unbranded2,
	virtual_tour_url_branded, virtual_tour_url_branded2`

const residentialColumns = `,
	rooms_above_grade, rooms_below_grade, heat_type, heat_source, has_fireplace,
	architectural_style, basement, roof, construction_materials,
	foundation_details, sewer, cooling, water_source, fireplace_features,
	community_features, lot_features, pool_features, security_features,
	waterfront_features`

// Repository queries one of the two property tables.
type Repository struct {
	db    storage.Querier
	cat   domlisting.Category
	table string
}

func NewRepository(db storage.Querier, cat domlisting.Category) *Repository {
	table := "residential_properties"
	if cat == domlisting.Commercial {
		table = "commercial_properties"
	}
	return &Repository{db: db, cat: cat, table: table}
}

// Category returns the category this repository is bound to.
func (r *Repository) Category() domlisting.Category {
	return r.cat
}

// Count returns the number of active listings matching the filters.
func (r *Repository) Count(ctx context.Context, f search.Filters) (int, error) {
	qb := newQueryBuilder()
	applyFilters(qb, f, r.cat, false)

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", r.table, qb.where())

	var count int
	if err := r.db.QueryRow(ctx, query, qb.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return count, nil
}

// Page returns one sorted slice of matching listings at the given offset.
func (r *Repository) Page(ctx context.Context, f search.Filters, sort search.Sort, offset, limit int) ([]domlisting.Summary, error) {
	if limit <= 0 {
		return nil, nil
	}

	qb := newQueryBuilder()
	applyFilters(qb, f, r.cat, false)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s OFFSET $%d LIMIT $%d",
		summaryColumns, r.table, qb.where(), orderClause(sort), qb.argID, qb.argID+1)
	args := append(qb.args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", r.table, err)
	}
	defer rows.Close()

	return r.collectSummaries(rows)
}

// MapPage returns matching listings that have coordinates, up to limit.
// Marker queries have no sort requirement, so no ORDER BY is issued.
func (r *Repository) MapPage(ctx context.Context, f search.Filters, limit int) ([]domlisting.Summary, error) {
	if limit <= 0 {
		return nil, nil
	}

	qb := newQueryBuilder()
	applyFilters(qb, f, r.cat, true)

	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT $%d",
		summaryColumns, r.table, qb.where(), qb.argID)
	args := append(qb.args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("map page %s: %w", r.table, err)
	}
	defer rows.Close()

	return r.collectSummaries(rows)
}

// GetByKey fetches the full detail row for one listing key.
// Returns domain.ErrListingNotFound when the key is not in this table.
func (r *Repository) GetByKey(ctx context.Context, key string) (*domlisting.Detail, error) {
	cols := detailColumns
	if r.cat == domlisting.Residential {
		cols += residentialColumns
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE listing_key = $1", cols, r.table)

	row := r.db.QueryRow(ctx, query, key)

	d, err := r.scanDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("listing %q in %s: %w", key, r.table, domain.ErrListingNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return d, nil
}

// Exists reports whether a listing key is present in this table.
func (r *Repository) Exists(ctx context.Context, key string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE listing_key = $1)", r.table)

	var exists bool
	if err := r.db.QueryRow(ctx, query, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s: %w", r.table, err)
	}
	return exists, nil
}

// Similar returns active listings resembling the base listing: same city,
// same transaction type and sub-type when the base has them, price within a
// category-dependent window, and for residential a bedroom count within one.
func (r *Repository) Similar(ctx context.Context, base *domlisting.Detail, limit int) ([]domlisting.Summary, error) {
	qb := newQueryBuilder()
	qb.add("listing_key <> $%d", base.ListingKey)

	if base.TransactionType != nil {
		qb.add("transaction_type = $%d", *base.TransactionType)
	}
	if base.PropertySubType != nil {
		qb.add("property_sub_type = $%d", *base.PropertySubType)
	}
	if base.Address.CityRegion != nil {
		qb.add("city_region = $%d", *base.Address.CityRegion)
	}
	if base.ListPrice != nil {
		lo, hi := similarPriceWindow(r.cat, *base.ListPrice)
		qb.add("list_price >= $%d", lo)
		qb.add("list_price <= $%d", hi)
	}
	if r.cat == domlisting.Residential && base.BedroomsTotal != nil {
		qb.add("bedrooms_total >= $%d", *base.BedroomsTotal-1)
		qb.add("bedrooms_total <= $%d", *base.BedroomsTotal+1)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s LIMIT $%d",
		summaryColumns, r.table, qb.where(), orderClause(search.Updated), qb.argID)
	args := append(qb.args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("similar %s: %w", r.table, err)
	}
	defer rows.Close()

	return r.collectSummaries(rows)
}

// similarPriceWindow bounds the price band for similar listings.
// Residential markets are more homogeneous, so the band is tighter.
func similarPriceWindow(cat domlisting.Category, price float64) (float64, float64) {
	window := 0.30
	if cat == domlisting.Residential {
		window = 0.20
	}
	return price * (1 - window), price * (1 + window)
}

// FeaturedByOffice returns active listings for one office, newest-modified
// first, along with the office name from the first contributing row.
func (r *Repository) FeaturedByOffice(ctx context.Context, officeKey string, transactionType *string, limit int) ([]domlisting.Summary, *string, error) {
	qb := newQueryBuilder()
	qb.add("list_office_key = $%d", officeKey)
	if transactionType != nil {
		qb.add("transaction_type = $%d", *transactionType)
	}

	query := fmt.Sprintf("SELECT %s, list_office_name FROM %s %s %s LIMIT $%d",
		summaryColumns, r.table, qb.where(), orderClause(search.Updated), qb.argID)
	args := append(qb.args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("featured %s: %w", r.table, err)
	}
	defer rows.Close()

	var (
		out        []domlisting.Summary
		officeName *string
	)
	for rows.Next() {
		s, name, err := r.scanSummaryWithOffice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("featured %s: %w", r.table, err)
		}
		if officeName == nil {
			officeName = name
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("featured %s: %w", r.table, err)
	}
	return out, officeName, nil
}

// DistinctCities returns active city values matching the query prefix,
// sorted ascending.
func (r *Repository) DistinctCities(ctx context.Context, q string, limit int) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT city_region FROM %s
		WHERE standard_status = 'Active' AND city_region IS NOT NULL AND city_region ILIKE $1
		ORDER BY city_region LIMIT $2`, r.table)

	return r.collectStrings(ctx, query, "%"+q+"%", limit)
}

// DistinctSubtypes returns the property sub-types present on active rows,
// sorted ascending.
func (r *Repository) DistinctSubtypes(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT property_sub_type FROM %s
		WHERE standard_status = 'Active' AND property_sub_type IS NOT NULL
		ORDER BY property_sub_type`, r.table)

	return r.collectStrings(ctx, query)
}

func (r *Repository) collectStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", r.table, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("distinct %s: %w", r.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct %s: %w", r.table, err)
	}
	return out, nil
}

func (r *Repository) collectSummaries(rows pgx.Rows) ([]domlisting.Summary, error) {
	var out []domlisting.Summary
	for rows.Next() {
		s, err := r.scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", r.table, err)
	}
	return out, nil
}
