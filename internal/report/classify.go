// Package report holds the order classification and reporting pipeline:
// deriving a coarse order type from free-text product names, reducing the
// order list by the filters the admin screen offers, and projecting the
// result into flat spreadsheet rows.
package report

import (
	"regexp"
	"strings"

	"github.com/edumela/admin-api/internal/models"
)

var bookKeywords = []string{"book", "বই"}

var giftKeywords = []string{"t-shirt", "shirt", "gift"}

// Alternation order is kept as the legacy reports used it: single letters
// before the spelled-out words. Word boundaries keep a bare "s" from
// matching inside "Small", but "S-XL Combo" matches "S" because "-" is a
// boundary.
var tShirtSizePattern = regexp.MustCompile(`(?i)\b(s|m|l|xl|xxl|small|medium|large|x-large)\b`)

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func isBookItem(item models.LineItem) bool {
	return containsAny(strings.ToLower(item.Name), bookKeywords) ||
		containsAny(strings.ToLower(item.Description), bookKeywords)
}

func isGiftItem(item models.LineItem) bool {
	return containsAny(strings.ToLower(item.Name), giftKeywords) ||
		containsAny(strings.ToLower(item.Description), giftKeywords)
}

// ClassifyOrderType derives the order type from its line items. A single
// book or gift hit anywhere in the order sets the flag for the whole order;
// an order with both kinds is BOOKS_AND_GIFTS. Empty input yields OTHER.
func ClassifyOrderType(items []models.LineItem) models.OrderType {
	var hasBooks, hasGifts bool

	for _, item := range items {
		if isBookItem(item) {
			hasBooks = true
		}
		if isGiftItem(item) {
			hasGifts = true
		}
	}

	switch {
	case hasBooks && hasGifts:
		return models.BooksAndGiftsType
	case hasBooks:
		return models.BooksType
	case hasGifts:
		return models.GiftsType
	default:
		return models.OtherType
	}
}

// ExtractTShirtSize returns the first size token found while iterating the
// line items in order, checking each item's name before its description.
// The token is upper-cased; an empty string means no item carries a size.
func ExtractTShirtSize(items []models.LineItem) string {
	for _, item := range items {
		if match := tShirtSizePattern.FindString(item.Name); match != "" {
			return strings.ToUpper(match)
		}
		if match := tShirtSizePattern.FindString(item.Description); match != "" {
			return strings.ToUpper(match)
		}
	}
	return ""
}
