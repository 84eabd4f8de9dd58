package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/carads"
)

// Compile-time interface verification.
var _ carads.ListingService = (*ListingService)(nil)

const listingColumns = `url, location, post_id, odometer, odometer_text,
	title_status, paint, drive, cylinders, condition, fuel, body_type, transmission, vin,
	name, posted_at, year, price, posting_body, description, title_text, image_count,
	latitude, longitude, make, model, needs_basic_parsing, needs_further_parsing, processed_at`

// ListingService implements carads.ListingService using SQLite.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// SaveListings upserts listings by URL in a single transaction.
func (s *ListingService) SaveListings(ctx context.Context, listings []*carads.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	for _, l := range listings {
		if l.URL == "" {
			return carads.Errorf(carads.EINVALID, "listing URL required")
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO listings (`+listingColumns+`)
		VALUES (`+placeholders(29)+`)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range listings {
		var miles, text any
		if l.Odometer != nil {
			miles = nullable(l.Odometer.Miles)
			if !l.Odometer.Numeric() {
				text = l.Odometer.Text
			}
		}

		if _, err := stmt.ExecContext(ctx,
			l.URL, l.Location, l.PostID, miles, text,
			nullable(l.TitleStatus), nullable(l.Paint), nullable(l.Drive), nullable(l.Cylinders),
			nullable(l.Condition), nullable(l.Fuel), nullable(l.BodyType), nullable(l.Transmission),
			nullable(l.VIN),
			nullable(l.Name), nullable(l.PostedAt), nullable(l.Year), nullable(l.Price),
			nullable(l.PostingBody), nullable(l.Description), nullable(l.TitleText), nullable(l.ImageCount),
			nullable(l.Latitude), nullable(l.Longitude), nullable(l.Make), nullable(l.Model),
			l.NeedsBasicParsing, l.NeedsFurtherParsing, formatTime(l.ProcessedAt),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindListings retrieves listings matching the filter, ordered by URL.
func (s *ListingService) FindListings(ctx context.Context, filter carads.ListingFilter) ([]*carads.Listing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + listingColumns + " FROM listings WHERE 1=1")

	if filter.Make != nil {
		query.WriteString(" AND make = ?")
		args = append(args, *filter.Make)
	}
	if filter.NeedsFurtherParsing != nil {
		query.WriteString(" AND needs_further_parsing = ?")
		args = append(args, *filter.NeedsFurtherParsing)
	}

	query.WriteString(" ORDER BY url")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*carads.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func scanListing(rows *sql.Rows) (*carads.Listing, error) {
	var l carads.Listing
	var miles, price, lat, long sql.Null[float64]
	var odoText, titleStatus, paint, drive, cylinders, condition sql.Null[string]
	var fuel, bodyType, transmission, vin, name, postedAt sql.Null[string]
	var postingBody, description, titleText, mk, model sql.Null[string]
	var year, imageCount sql.Null[int]
	var processedAt string

	if err := rows.Scan(
		&l.URL, &l.Location, &l.PostID, &miles, &odoText,
		&titleStatus, &paint, &drive, &cylinders, &condition, &fuel, &bodyType, &transmission, &vin,
		&name, &postedAt, &year, &price, &postingBody, &description, &titleText, &imageCount,
		&lat, &long, &mk, &model, &l.NeedsBasicParsing, &l.NeedsFurtherParsing, &processedAt,
	); err != nil {
		return nil, err
	}

	switch {
	case miles.Valid:
		l.Odometer = &carads.Odometer{Miles: ptr(miles)}
	case odoText.Valid:
		l.Odometer = &carads.Odometer{Text: odoText.V}
	}

	l.TitleStatus, l.Paint, l.Drive = ptr(titleStatus), ptr(paint), ptr(drive)
	l.Cylinders, l.Condition, l.Fuel = ptr(cylinders), ptr(condition), ptr(fuel)
	l.BodyType, l.Transmission, l.VIN = ptr(bodyType), ptr(transmission), ptr(vin)
	l.Name, l.PostedAt, l.Year, l.Price = ptr(name), ptr(postedAt), ptr(year), ptr(price)
	l.PostingBody, l.Description, l.TitleText = ptr(postingBody), ptr(description), ptr(titleText)
	l.ImageCount, l.Latitude, l.Longitude = ptr(imageCount), ptr(lat), ptr(long)
	l.Make, l.Model = ptr(mk), ptr(model)

	var err error
	l.ProcessedAt, err = parseRFC3339(processedAt, "processed_at")
	if err != nil {
		return nil, err
	}

	return &l, nil
}
