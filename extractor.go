package carads

// Attribute labels of the listing attribute block that map onto record fields.
const (
	AttrOdometer     = "odometer"
	AttrTitleStatus  = "title status"
	AttrPaint        = "paint color"
	AttrDrive        = "drive"
	AttrCylinders    = "cylinders"
	AttrCondition    = "condition"
	AttrFuel         = "fuel"
	AttrType         = "type"
	AttrTransmission = "transmission"
	AttrVIN          = "vin"
)

// AttributeMap maps a normalized attribute label to its raw value.
// Absent attributes are missing keys, never empty strings.
type AttributeMap map[string]string

// Get returns the value for label, or nil when the attribute is absent.
func (m AttributeMap) Get(label string) *string {
	v, ok := m[label]
	if !ok || v == "" {
		return nil
	}
	return &v
}

// Extraction holds the raw fields pulled out of a single document.
// Each field is extracted independently; nil means the field was missing
// or could not be parsed.
type Extraction struct {
	Attributes AttributeMap

	// DisplayName is the poster-supplied make/model line.
	DisplayName *string
	// TitleText is the free-text page title.
	TitleText   *string
	PostingBody *string

	Year       *int
	ImageCount *int
	PostedAt   *string

	// Fields decoded from the embedded posting metadata block.
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Description *string
}

// Extractor extracts listing fields from a raw document.
type Extractor interface {
	// Extract never fails: a nil, empty, or malformed document yields an
	// Extraction with nil fields and an empty attribute map.
	Extract(doc *RawDocument) *Extraction
}
