package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Site-specific marker classes. The frame measurements are exposed as two
// separately rendered node lists that are only aligned by position, so the
// selectors must stay in sync with the SmartEyes markup.
const (
	productLinkSelector  = "a.product-block-images"
	propertyNameSelector = "p._text_3kw2f_1._mb-5_1jxbs_120._text-caption-head_3kw2f_213"
	measurementSelector  = "p._text_3kw2f_1._text-caption-head_3kw2f_213.product-detail-frame-measurements__details"
)

// ErrPairCountMismatch means the property-name and measurement node lists
// differ in length, so positional pairing would be unsafe.
var ErrPairCountMismatch = errors.New("property and measurement counts differ")

// PropertyPair is one named dimension and its raw value text, e.g.
// ("Bredd", "140 mm").
type PropertyPair struct {
	Name  string
	Value string
}

// ParseListing returns the relative product hrefs on a listing page, in
// document order. An empty result marks the end of the catalog.
func ParseListing(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var hrefs []string
	doc.Find(productLinkSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs, nil
}

// ParseProductPage zips the property-name and measurement node lists of a
// product page by position. If the lists differ in length no pairing is
// attempted and ErrPairCountMismatch is returned.
func ParseProductPage(html string) ([]PropertyPair, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	names := doc.Find(propertyNameSelector)
	values := doc.Find(measurementSelector)

	if names.Length() != values.Length() {
		return nil, fmt.Errorf("%w: %d properties, %d measurements",
			ErrPairCountMismatch, names.Length(), values.Length())
	}

	pairs := make([]PropertyPair, 0, names.Length())
	for i := 0; i < names.Length(); i++ {
		pairs = append(pairs, PropertyPair{
			Name:  strings.TrimSpace(names.Eq(i).Text()),
			Value: strings.TrimSpace(values.Eq(i).Text()),
		})
	}

	return pairs, nil
}

// NormalizeFieldKey turns a localized property label into an ASCII field
// key: trimmed, lower-cased, with "ä" folded to "a" ("Skalmlängd" →
// "skalmlangd").
func NormalizeFieldKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(key, "ä", "a")
}

// ParseMillimeters parses the integer token before the first space of a
// measurement value such as "54 mm".
func ParseMillimeters(value string) (int, error) {
	token, _, _ := strings.Cut(value, " ")
	mm, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement value %q", value)
	}
	return mm, nil
}
