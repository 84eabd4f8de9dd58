package goquery_test

import (
	"testing"

	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<!DOCTYPE html>
<html>
<head>
<link rel="canonical" href="https://seattle.craigslist.org/see/cto/d/seattle-2014-honda-civic/7712345678.html">
<script type="application/ld+json" id="ld_posting_data">
{"@type":"Product","name":"2014 Honda Civic LX","description":"One owner, clean title.",
 "offers":{"@type":"Offer","price":"8500.00","priceCurrency":"USD",
  "availableAtOrFrom":{"@type":"Place","geo":{"@type":"GeoCoordinates","latitude":47.6097,"longitude":-122.3331}}}}
</script>
</head>
<body>
<h1 class="postingtitle"><span class="postingtitletext"><span id="titletextonly">2014 Honda Civic LX - low miles</span></span></h1>
<div class="gallery"><span class="slider-info">image 1 of 12</span></div>
<section id="postingbody">
<div class="print-information print-qrcode-container"><p class="print-qrcode-label">QR Code Link to This Post</p></div>
Runs great. New tires.
</section>
<div class="attrgroup">
	<div class="attr important"><span class="valu year">2014</span><span class="valu makemodel"><a href="/search">honda civic lx</a></span></div>
	<div class="attr"><span class="labl">odometer:</span><span class="valu">88,000</span></div>
	<div class="attr"><span class="labl">title status:</span><span class="valu"><a>clean</a></span></div>
	<div class="attr"><span class="labl">Paint Color:</span><span class="valu">blue</span></div>
	<div class="attr"><span class="labl">fuel:</span><span class="valu"> gas </span></div>
	<div class="attr"><span class="labl">drive:</span><span class="valu"></span></div>
	<div class="attr"><span class="valu">orphan value</span></div>
</div>
<p class="postinginfos"><time class="date timeago" datetime="2023-08-01T10:12:33-07:00">2023-08-01 10:12</time></p>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{URL: "https://example.org/1.html", HTML: listingHTML})

		assert.Equal(t, carads.AttributeMap{
			"odometer":     "88,000",
			"title status": "clean",
			"paint color":  "blue",
			"fuel":         "gas",
		}, ext.Attributes)

		require.NotNil(t, ext.DisplayName)
		assert.Equal(t, "honda civic lx", *ext.DisplayName)
		require.NotNil(t, ext.Year)
		assert.Equal(t, 2014, *ext.Year)
		require.NotNil(t, ext.TitleText)
		assert.Equal(t, "2014 Honda Civic LX - low miles", *ext.TitleText)
		require.NotNil(t, ext.PostingBody)
		assert.Equal(t, "Runs great. New tires.", *ext.PostingBody)
		require.NotNil(t, ext.ImageCount)
		assert.Equal(t, 12, *ext.ImageCount)
		require.NotNil(t, ext.PostedAt)
		assert.Equal(t, "2023-08-01 10:12:33", *ext.PostedAt)

		require.NotNil(t, ext.Price)
		assert.InDelta(t, 8500, *ext.Price, 0)
		require.NotNil(t, ext.Latitude)
		assert.InDelta(t, 47.6097, *ext.Latitude, 1e-9)
		require.NotNil(t, ext.Longitude)
		assert.InDelta(t, -122.3331, *ext.Longitude, 1e-9)
		require.NotNil(t, ext.Description)
		assert.Equal(t, "2014 Honda Civic LX>>>One owner, clean title.", *ext.Description)
	})

	t.Run("missing metadata leaves other fields intact", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="attr important"><span class="valu year">2009</span></div>
<span id="titletextonly">Ford Focus</span>
</body></html>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Price)
		assert.Nil(t, ext.Latitude)
		assert.Nil(t, ext.Longitude)
		assert.Nil(t, ext.Description)
		require.NotNil(t, ext.Year)
		assert.Equal(t, 2009, *ext.Year)
		require.NotNil(t, ext.TitleText)
		assert.Equal(t, "Ford Focus", *ext.TitleText)
	})

	t.Run("malformed metadata blanks only metadata fields", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script id="ld_posting_data">{"offers": {"price": 1200,</script></head>
<body><span class="slider-info">image 3 of 4</span></body></html>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Price)
		assert.Nil(t, ext.Description)
		require.NotNil(t, ext.ImageCount)
		assert.Equal(t, 4, *ext.ImageCount)
	})

	t.Run("malformed price does not blank coordinates", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script id="ld_posting_data">
{"description":"cheap","offers":{"price":"call me","availableAtOrFrom":{"geo":{"latitude":"45.5","longitude":-122.6}}}}
</script></head><body></body></html>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Price)
		require.NotNil(t, ext.Latitude)
		assert.InDelta(t, 45.5, *ext.Latitude, 1e-9)
		require.NotNil(t, ext.Longitude)
		require.NotNil(t, ext.Description)
		assert.Equal(t, "cheap", *ext.Description)
	})

	t.Run("offers array blanks only offer fields", func(t *testing.T) {
		t.Parallel()

		html := `<script id="ld_posting_data">{"name":"Ford Focus","description":"runs great","offers":[{"price":5000}]}</script>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Price)
		assert.Nil(t, ext.Latitude)
		require.NotNil(t, ext.Description)
		assert.Equal(t, "Ford Focus>>>runs great", *ext.Description)
	})

	t.Run("geo string blanks only coordinates", func(t *testing.T) {
		t.Parallel()

		html := `<script id="ld_posting_data">{"description":"runs great","offers":{"price":5000,"availableAtOrFrom":{"geo":"n/a"}}}</script>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Latitude)
		assert.Nil(t, ext.Longitude)
		require.NotNil(t, ext.Price)
		assert.InDelta(t, 5000, *ext.Price, 0)
		require.NotNil(t, ext.Description)
		assert.Equal(t, "runs great", *ext.Description)
	})

	t.Run("numeric price", func(t *testing.T) {
		t.Parallel()

		html := `<script id="ld_posting_data">{"offers":{"price":4200}}</script>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		require.NotNil(t, ext.Price)
		assert.InDelta(t, 4200, *ext.Price, 0)
	})

	t.Run("null price", func(t *testing.T) {
		t.Parallel()

		html := `<script id="ld_posting_data">{"offers":{"price":null}}</script>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Price)
	})

	t.Run("coordinates require both values", func(t *testing.T) {
		t.Parallel()

		html := `<script id="ld_posting_data">{"offers":{"availableAtOrFrom":{"geo":{"latitude":45.5}}}}</script>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Latitude)
		assert.Nil(t, ext.Longitude)
	})

	t.Run("non-numeric year and image count", func(t *testing.T) {
		t.Parallel()

		html := `<span class="valu year">twenty ten</span><span class="slider-info">gallery</span>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.Year)
		assert.Nil(t, ext.ImageCount)
	})

	t.Run("unparsable timestamp", func(t *testing.T) {
		t.Parallel()

		html := `<time class="date timeago" datetime="sometime soon">recently</time>`

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{HTML: html})

		assert.Nil(t, ext.PostedAt)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor().Extract(&carads.RawDocument{URL: "https://example.org/1.html"})

		require.NotNil(t, ext)
		assert.Empty(t, ext.Attributes)
		assert.Nil(t, ext.DisplayName)
		assert.Nil(t, ext.Price)
	})

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor().Extract(nil)

		require.NotNil(t, ext)
		assert.NotNil(t, ext.Attributes)
		assert.Empty(t, ext.Attributes)
	})
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://seattle.craigslist.org/see/cto/d/seattle-2014-honda-civic/7712345678.html",
		goquery.CanonicalURL(listingHTML))
	assert.Empty(t, goquery.CanonicalURL("<html><body>no link</body></html>"))
}
