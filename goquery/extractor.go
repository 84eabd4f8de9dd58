// Package goquery extracts listing fields from classified-ad HTML.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/carads"
)

// PostedAtLayout is the layout of Extraction.PostedAt.
const PostedAtLayout = "2006-01-02 15:04:05"

// Ensure Extractor implements carads.Extractor.
var _ carads.Extractor = (*Extractor)(nil)

// Extractor pulls listing fields out of classified-ad pages.
// Every field is read independently, so a missing or malformed element only
// blanks its own field.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads every field it can find in doc.
func (e *Extractor) Extract(doc *carads.RawDocument) *carads.Extraction {
	ext := &carads.Extraction{Attributes: carads.AttributeMap{}}
	if doc == nil || strings.TrimSpace(doc.HTML) == "" {
		return ext
	}

	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return ext
	}

	ext.Attributes = attributes(page)
	ext.DisplayName = text(page.Find(".valu.makemodel"))
	ext.Year = year(page)
	ext.PostedAt = postedAt(page)
	ext.ImageCount = imageCount(page)
	ext.TitleText = text(page.Find("span#titletextonly"))
	ext.PostingBody = postingBody(page)

	meta := parseMetadata(page.Find("script#ld_posting_data").First().Text())
	ext.Price = meta.price()
	ext.Latitude, ext.Longitude = meta.geo()
	ext.Description = meta.description()

	return ext
}

// attributes collects the label/value pairs of the attribute block. Labels
// are lowercased without their trailing colon. A repeated label keeps its
// last value.
func attributes(page *goquery.Document) carads.AttributeMap {
	attrs := carads.AttributeMap{}
	page.Find("div.attr").Each(func(_ int, sel *goquery.Selection) {
		label := sel.Find("span.labl").First()
		value := sel.Find("span.valu").First()
		if label.Length() == 0 || value.Length() == 0 {
			return
		}
		key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(label.Text()), ":"))
		key = strings.TrimSpace(key)
		val := strings.TrimSpace(value.Text())
		if key == "" || val == "" {
			return
		}
		attrs[key] = val
	})
	return attrs
}

func year(page *goquery.Document) *int {
	s := text(page.Find("span.valu.year"))
	if s == nil {
		return nil
	}
	y, err := strconv.Atoi(*s)
	if err != nil {
		return nil
	}
	return &y
}

func postedAt(page *goquery.Document) *string {
	sel := page.Find("time.date.timeago").First()
	if sel.Length() == 0 {
		return nil
	}
	raw, ok := sel.Attr("datetime")
	if !ok || strings.TrimSpace(raw) == "" {
		raw = sel.Text()
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	s := t.Format(PostedAtLayout)
	return &s
}

// imageCount reads the total from the gallery caption, e.g. "image 1 of 12".
func imageCount(page *goquery.Document) *int {
	s := text(page.Find("span.slider-info"))
	if s == nil {
		return nil
	}
	fields := strings.Fields(*s)
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return nil
	}
	return &n
}

// postingBody returns the free-text body without the print-only QR code
// caption.
func postingBody(page *goquery.Document) *string {
	sel := page.Find("section#postingbody").First().Clone()
	sel.Find(".print-information").Remove()
	return text(sel)
}

// text returns the trimmed text of the first matched element, or nil when
// there is no match or the text is blank.
func text(sel *goquery.Selection) *string {
	if sel.Length() == 0 {
		return nil
	}
	s := strings.TrimSpace(sel.First().Text())
	if s == "" {
		return nil
	}
	return &s
}

// CanonicalURL returns the canonical link of a page, or "" when it has none.
func CanonicalURL(html string) string {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	href, _ := page.Find(`link[rel="canonical"]`).First().Attr("href")
	return strings.TrimSpace(href)
}
