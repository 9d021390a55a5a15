// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scrape

import (
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/wishkeeper/models"
	"golang.org/x/net/html"
)

// parseMetadata walks the parsed HTML tree and collects item metadata.
//
// Precedence: Open Graph properties win; the <title> element and the plain
// meta description fill in whatever Open Graph left empty.
func parseMetadata(r io.Reader) (models.ItemMetadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return models.ItemMetadata{}, err
	}

	var (
		metadata        models.ItemMetadata
		titleFallback   string
		descFallback    string
		ogTitle, ogDesc string
	)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && titleFallback == "" {
					titleFallback = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				property := attr(n, "property")
				content := strings.TrimSpace(attr(n, "content"))
				if content == "" {
					break
				}
				switch property {
				case "og:title":
					ogTitle = content
				case "og:image":
					metadata.ImageURL = content
				case "og:description":
					ogDesc = content
				case "og:type":
					if metadata.Category == "" {
						metadata.Category = content
					}
				case "og:price:amount", "product:price:amount":
					if cents, ok := parsePriceCents(content); ok {
						metadata.PriceCents = &cents
					}
				}
				if attr(n, "name") == "description" && descFallback == "" {
					descFallback = content
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	metadata.Title = firstNonEmpty(ogTitle, titleFallback)
	metadata.Description = firstNonEmpty(ogDesc, descFallback)

	return metadata, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parsePriceCents converts a decimal price string like "19.99", "45", or
// "1,299.99" to minor units. Parsed digit by digit rather than through
// float64 so "19.99" cannot come out as 1998.
//
// When both separators appear, the rightmost one is the decimal mark and the
// other is a thousands separator. A lone comma followed by exactly three
// digits (or repeated) reads as a thousands separator, otherwise as the
// decimal mark.
func parsePriceCents(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)

	lastComma := strings.LastIndex(raw, ",")
	lastDot := strings.LastIndex(raw, ".")

	decimal := "."
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			decimal = ","
			raw = strings.ReplaceAll(raw, ".", "")
		} else {
			raw = strings.ReplaceAll(raw, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(raw, ",") > 1 || len(raw)-lastComma-1 == 3 {
			raw = strings.ReplaceAll(raw, ",", "")
		} else {
			decimal = ","
		}
	}

	whole, frac, hasFrac := strings.Cut(raw, decimal)
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, false
	}

	cents := int64(0)
	if hasFrac {
		// a second separator surviving this far means the format is garbage
		if strings.ContainsFunc(frac, func(r rune) bool { return r < '0' || r > '9' }) {
			return 0, false
		}
		switch len(frac) {
		case 1:
			frac += "0"
		case 2:
		default:
			if len(frac) > 2 {
				frac = frac[:2]
			} else {
				frac = "00"
			}
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, false
		}
	}

	return units*100 + cents, true
}
