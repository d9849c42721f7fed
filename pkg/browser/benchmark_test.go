package browser_test

import (
	"testing"

	"github.com/dmitrymomot/browserdetect/pkg/browser"
	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
)

func BenchmarkLookup(b *testing.B) {
	d := browser.MustNewDetector()
	uas := []string{uaChromeDesktop, uaChromeMobile, uaFirefoxDesktop, uaSafariMobile, uaOperaDesktop, uaEdgeChromium, uaIE11}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Lookup(uas[i%len(uas)], nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookupWithHints(b *testing.B) {
	d := browser.MustNewDetector()
	hints := &clienthints.ClientHints{
		FullVersionList: []clienthints.BrandVersion{
			{Brand: "Not_A Brand", Version: "99.0.0.0"},
			{Brand: "Chromium", Version: "96.0.4664.45"},
			{Brand: "Google Chrome", Version: "96.0.4664.45"},
		},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Lookup(uaChromeDesktop, hints); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookupNoMatch(b *testing.B) {
	d := browser.MustNewDetector()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Lookup("curl/7.68.0", nil); err != nil {
			b.Fatal(err)
		}
	}
}
