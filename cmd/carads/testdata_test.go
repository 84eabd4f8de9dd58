package main_test

const listingHTML = `<!DOCTYPE html>
<html>
<head>
<link rel="canonical" href="https://seattle.craigslist.org/see/cto/d/seattle-2014-honda-civic/7712345678.html">
<script type="application/ld+json" id="ld_posting_data">
{"@type":"Product","name":"2014 Honda Civic LX","description":"One owner.",
 "offers":{"@type":"Offer","price":"8500.00"}}
</script>
</head>
<body>
<span id="titletextonly">2014 Honda Civic LX</span>
<div class="attrgroup">
	<div class="attr important"><span class="valu year">2014</span><span class="valu makemodel">honda civic lx</span></div>
	<div class="attr"><span class="labl">odometer:</span><span class="valu">88000</span></div>
</div>
</body>
</html>`

const unknownHTML = `<html><body><span id="titletextonly">project car, make an offer</span></body></html>`

const catalogYAML = `
honda:
  - model: Civic
  - model: Odyssey
    short_model: odyssey
toyota:
  - model: Camry
`
