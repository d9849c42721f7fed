package clienthints_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
)

func headerWith(pairs ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
	return h
}

func TestParse_BrandList(t *testing.T) {
	t.Parallel()

	t.Run("full version list preserves order", func(t *testing.T) {
		t.Parallel()
		h := headerWith("Sec-CH-UA-Full-Version-List",
			`" Not A;Brand";v="99.0.0.0", "Chromium";v="98.0.4758.82", "Opera";v="84.0.4316.21"`)

		hints := clienthints.Parse(h)
		require.Len(t, hints.FullVersionList, 3)
		assert.Equal(t, clienthints.BrandVersion{Brand: "Not A;Brand", Version: "99.0.0.0"}, hints.FullVersionList[0])
		assert.Equal(t, clienthints.BrandVersion{Brand: "Chromium", Version: "98.0.4758.82"}, hints.FullVersionList[1])
		assert.Equal(t, clienthints.BrandVersion{Brand: "Opera", Version: "84.0.4316.21"}, hints.FullVersionList[2])
	})

	t.Run("falls back to sec-ch-ua", func(t *testing.T) {
		t.Parallel()
		h := headerWith("Sec-CH-UA", `"Google Chrome";v="96", "Chromium";v="96"`)

		hints := clienthints.Parse(h)
		require.Len(t, hints.FullVersionList, 2)
		assert.Equal(t, "Google Chrome", hints.FullVersionList[0].Brand)
		assert.Equal(t, "96", hints.FullVersionList[0].Version)
	})

	t.Run("full version list wins over sec-ch-ua", func(t *testing.T) {
		t.Parallel()
		h := headerWith(
			"Sec-CH-UA", `"Chromium";v="96"`,
			"Sec-CH-UA-Full-Version-List", `"Chromium";v="96.0.4664.45"`,
		)

		hints := clienthints.Parse(h)
		require.Len(t, hints.FullVersionList, 1)
		assert.Equal(t, "96.0.4664.45", hints.FullVersionList[0].Version)
	})

	t.Run("item without version", func(t *testing.T) {
		t.Parallel()
		h := headerWith("Sec-CH-UA", `"Chromium"`)

		hints := clienthints.Parse(h)
		require.Len(t, hints.FullVersionList, 1)
		assert.Equal(t, clienthints.BrandVersion{Brand: "Chromium"}, hints.FullVersionList[0])
	})

	t.Run("absent headers", func(t *testing.T) {
		t.Parallel()
		hints := clienthints.Parse(http.Header{})
		assert.Nil(t, hints.FullVersionList)
		assert.True(t, hints.Empty())
	})
}

func TestParse_FullVersion(t *testing.T) {
	t.Parallel()

	h := headerWith("Sec-CH-UA-Full-Version", `"96.0.4664.110"`)
	hints := clienthints.Parse(h)
	assert.Equal(t, "96.0.4664.110", hints.UAFullVersion)
}

func TestParse_App(t *testing.T) {
	t.Parallel()

	t.Run("android package id", func(t *testing.T) {
		t.Parallel()
		h := headerWith("X-Requested-With", "com.duckduckgo.mobile.android")
		assert.Equal(t, "com.duckduckgo.mobile.android", clienthints.Parse(h).App)
	})

	t.Run("ajax marker is ignored", func(t *testing.T) {
		t.Parallel()
		h := headerWith("X-Requested-With", "XMLHttpRequest")
		assert.Empty(t, clienthints.Parse(h).App)
	})
}

func TestParse_FormFactors(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		h := headerWith("Sec-CH-UA-Form-Factors", `"Desktop"`)
		assert.Equal(t, []string{"desktop"}, clienthints.Parse(h).FormFactors)
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		h := headerWith("Sec-CH-UA-Form-Factors", `"Mobile", "Touch"`)
		assert.Equal(t, []string{"mobile", "touch"}, clienthints.Parse(h).FormFactors)
	})
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var nilHints *clienthints.ClientHints
	assert.True(t, nilHints.Empty())
	assert.True(t, (&clienthints.ClientHints{}).Empty())
	assert.False(t, (&clienthints.ClientHints{App: "com.example"}).Empty())
}
