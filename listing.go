package carads

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Listing is the normalized record produced for one document.
//
// Optional fields are nil when the source document did not provide a usable
// value. Make and Model are nil or canonical catalog values.
type Listing struct {
	URL      string `json:"url"`
	Location string `json:"location"`
	PostID   string `json:"postId"`

	Odometer     *Odometer `json:"odometer"`
	TitleStatus  *string   `json:"titleStatus"`
	Paint        *string   `json:"paint"`
	Drive        *string   `json:"drive"`
	Cylinders    *string   `json:"cylinders"`
	Condition    *string   `json:"condition"`
	Fuel         *string   `json:"fuel"`
	BodyType     *string   `json:"bodyType"`
	Transmission *string   `json:"transmission"`
	VIN          *string   `json:"vin"`

	Name        *string  `json:"name"`
	PostedAt    *string  `json:"postedAt"`
	Year        *int     `json:"year"`
	Price       *float64 `json:"price"`
	PostingBody *string  `json:"postingBody"`
	Description *string  `json:"description"`
	TitleText   *string  `json:"titleText"`
	ImageCount  *int     `json:"imageCount"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Make  *string `json:"make"`
	Model *string `json:"model"`

	NeedsBasicParsing   bool      `json:"needsBasicParsing"`
	NeedsFurtherParsing bool      `json:"needsFurtherParsing"`
	ProcessedAt         time.Time `json:"processedAt"`
}

// ListingSink accepts batches of finished records.
type ListingSink interface {
	// SaveListings stores the records, replacing earlier records for the
	// same URL.
	SaveListings(ctx context.Context, listings []*Listing) error
}

// ListingService represents a service for managing processed listings.
type ListingService interface {
	ListingSink

	// FindListings retrieves listings matching the filter.
	FindListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	Make                *string `json:"make"`
	NeedsFurtherParsing *bool   `json:"needsFurtherParsing"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Odometer is a mileage reading. Miles is set when the source text was
// numeric; otherwise Text keeps the original value.
type Odometer struct {
	Miles *float64
	Text  string
}

// ParseOdometer coerces an odometer attribute. Readings under 1000 are
// taken to be in thousands of miles, so "45" becomes 45000. Thousands
// separators are ignored. Non-numeric text is kept as Text. Returns nil for
// blank input.
func ParseOdometer(raw string) *Odometer {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return &Odometer{Text: raw}
	}
	if v < 1000 {
		v *= 1000
	}
	return &Odometer{Miles: &v}
}

// Numeric reports whether the reading was coerced to a number.
func (o *Odometer) Numeric() bool {
	return o != nil && o.Miles != nil
}

// MarshalJSON encodes the reading as a number, or as the original text when
// it was not numeric.
func (o Odometer) MarshalJSON() ([]byte, error) {
	if o.Miles != nil {
		return json.Marshal(*o.Miles)
	}
	return json.Marshal(o.Text)
}

// UnmarshalJSON decodes a number or a string.
func (o *Odometer) UnmarshalJSON(data []byte) error {
	var miles float64
	if err := json.Unmarshal(data, &miles); err == nil {
		o.Miles, o.Text = &miles, ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	o.Miles, o.Text = nil, text
	return nil
}

// PostID derives the listing post identifier from its URL: the trailing
// path segment without its file extension.
func PostID(url string) string {
	seg := url[strings.LastIndex(url, "/")+1:]
	if i := strings.Index(seg, "."); i >= 0 {
		seg = seg[:i]
	}
	return seg
}

// Assemble builds the classified record for a document from its extracted
// fields, resolving make and model against the catalog. It never fails:
// fields it cannot populate are left nil.
func Assemble(doc *RawDocument, ext *Extraction, cat *Catalog) *Listing {
	if ext == nil {
		ext = &Extraction{}
	}
	attrs := ext.Attributes

	l := &Listing{
		TitleStatus:  attrs.Get(AttrTitleStatus),
		Paint:        attrs.Get(AttrPaint),
		Drive:        attrs.Get(AttrDrive),
		Cylinders:    attrs.Get(AttrCylinders),
		Condition:    attrs.Get(AttrCondition),
		Fuel:         attrs.Get(AttrFuel),
		BodyType:     attrs.Get(AttrType),
		Transmission: attrs.Get(AttrTransmission),
		VIN:          attrs.Get(AttrVIN),

		Name:        ext.DisplayName,
		PostedAt:    ext.PostedAt,
		Year:        ext.Year,
		Price:       ext.Price,
		PostingBody: ext.PostingBody,
		Description: ext.Description,
		TitleText:   ext.TitleText,
		ImageCount:  ext.ImageCount,
		Latitude:    ext.Latitude,
		Longitude:   ext.Longitude,
	}
	if doc != nil {
		l.URL = doc.URL
		l.Location = doc.Location
		l.PostID = PostID(doc.URL)
	}
	if raw := attrs.Get(AttrOdometer); raw != nil {
		l.Odometer = ParseOdometer(*raw)
	}

	l.Make = cat.ResolveMake(ext.DisplayName, ext.TitleText)
	if l.Make != nil {
		l.Model = cat.ResolveModel(*l.Make, ext.DisplayName, ext.TitleText)
	}

	return Classify(l)
}

// Classify returns a copy of l with its routing flags set. A classified
// record never needs basic parsing again; it needs further parsing unless
// make, model, and price were all resolved.
func Classify(l *Listing) *Listing {
	if l == nil {
		return nil
	}
	out := *l
	out.NeedsBasicParsing = false
	out.NeedsFurtherParsing = out.Make == nil || out.Model == nil || out.Price == nil
	return &out
}
