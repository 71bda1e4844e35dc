package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kashi"
	"github.com/fwojciec/kashi/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *pq.Document {
	t.Helper()
	doc, err := pq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestLocator_LocateWithStrategy(t *testing.T) {
	t.Parallel()

	locator := goquery.NewLocator(goquery.DefaultStrategies(kashi.DefaultKeywords())...)

	t.Run("finds container marked with lyrics class", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div id="other">1. a 2. b 3. c</div>
<div class="lyrics" id="target"><p>1.</p><p>Sakura</p></div>
</body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "marked", name)
		id, _ := sel.Attr("id")
		assert.Equal(t, "target", id)
	})

	t.Run("finds container marked with lyrics id", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><section id="lyrics"><p>1. Sakura</p></section></body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "marked", name)
		assert.Equal(t, "section", pq.NodeName(sel))
	})

	t.Run("prefers marked container over main", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<main id="main"><p>1. Main</p></main>
<div class="lyrics" id="target"><p>1. Marked</p></div>
</body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "marked", name)
		id, _ := sel.Attr("id")
		assert.Equal(t, "target", id)
	})

	t.Run("falls back to main element", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><nav>Menu</nav><main><p>1. Sakura</p></main></body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "primary", name)
		assert.Equal(t, "main", pq.NodeName(sel))
	})

	t.Run("falls back to article element when no main", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><article><p>1. Sakura</p></article></body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "primary", name)
		assert.Equal(t, "article", pq.NodeName(sel))
	})

	t.Run("finds div carrying numbered markers", func(t *testing.T) {
		t.Parallel()

		verse := strings.Repeat("Kaze ga fuku ", 10)
		doc := parseDoc(t, `<html><body>
<div id="short">1. 2. 3.</div>
<div id="target"><p>1. `+verse+`</p><p>2. Tsuki</p><p>3. Hoshi</p></div>
</body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "numbered", name)
		id, _ := sel.Attr("id")
		assert.Equal(t, "target", id)
	})

	t.Run("finds div with indicator keyword and marker", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div id="nav">Menu</div>
<div id="target"><h2>Lyrics</h2><p>1. Yume</p></div>
</body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		require.NotNil(t, sel)
		assert.Equal(t, "indicator", name)
		id, _ := sel.Attr("id")
		assert.Equal(t, "target", id)
	})

	t.Run("returns nil when no strategy matches", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div>Nothing to see</div></body></html>`)

		sel, name := locator.LocateWithStrategy(doc)

		assert.Nil(t, sel)
		assert.Empty(t, name)
	})

	t.Run("returns nil for nil document", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, locator.Locate(nil))
	})
}

func TestNumberedMarkersStrategy_Locate(t *testing.T) {
	t.Parallel()

	t.Run("rejects containers missing a marker", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("Kaze ga fuku ", 10)
		doc := parseDoc(t, `<div>1. `+text+` 2. Tsuki</div>`)

		assert.Nil(t, goquery.NewNumberedMarkersStrategy().Locate(doc))
	})

	t.Run("rejects containers below minimum length", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>1. a 2. b 3. c</div>`)

		assert.Nil(t, goquery.NewNumberedMarkersStrategy().Locate(doc))
	})

	t.Run("rejects containers at or above maximum length", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", goquery.DefaultMaxContainerLength)
		doc := parseDoc(t, `<div>1. 2. 3. `+text+`</div>`)

		assert.Nil(t, goquery.NewNumberedMarkersStrategy().Locate(doc))
	})

	t.Run("counts length in characters", func(t *testing.T) {
		t.Parallel()

		// 40 characters of kana is 120 bytes but below the minimum length.
		text := strings.Repeat("かぜ", 20)
		doc := parseDoc(t, `<div>1. 2. 3. `+text+`</div>`)

		assert.Nil(t, goquery.NewNumberedMarkersStrategy().Locate(doc))
	})

	t.Run("returns first matching div in document order", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("Kaze ga fuku ", 10)
		doc := parseDoc(t, `<div id="outer"><div id="inner">1. 2. 3. `+text+`</div></div>`)

		sel := goquery.NewNumberedMarkersStrategy().Locate(doc)

		require.NotNil(t, sel)
		id, _ := sel.Attr("id")
		assert.Equal(t, "outer", id)
	})
}

func TestIndicatorStrategy_Locate(t *testing.T) {
	t.Parallel()

	kw := kashi.DefaultKeywords()

	t.Run("matches Japanese indicator keyword", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div id="target">歌詞 1. 夢</div>`)

		sel := goquery.NewIndicatorStrategy(kw).Locate(doc)

		require.NotNil(t, sel)
	})

	t.Run("requires a marker", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>Lyrics coming soon</div>`)

		assert.Nil(t, goquery.NewIndicatorStrategy(kw).Locate(doc))
	})

	t.Run("requires an indicator keyword", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>1. Yume</div>`)

		assert.Nil(t, goquery.NewIndicatorStrategy(kw).Locate(doc))
	})

	t.Run("accepts markers up to ten", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>Romaji 10. Owari</div>`)

		assert.NotNil(t, goquery.NewIndicatorStrategy(kw).Locate(doc))
	})
}

func TestTextLines(t *testing.T) {
	t.Parallel()

	t.Run("splits text nodes and embedded newlines", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "<div><p>1.<br>Hana</p><p> Kaze\n  Ame </p></div>")

		got := goquery.TextLines(doc.Find("div"))

		assert.Equal(t, []string{"1.", "Hana", "Kaze", "Ame"}, got)
	})

	t.Run("skips invisible elements", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><script>var x = "1. bad";</script><style>p{}</style><p>1. Good</p></div>`)

		got := goquery.TextLines(doc.Find("div"))

		assert.Equal(t, []string{"1. Good"}, got)
	})

	t.Run("returns nil for nil selection", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, goquery.TextLines(nil))
	})
}
