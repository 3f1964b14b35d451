package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
)

// Slugify turns a product or service title into a URL-safe slug.
func Slugify(input string) string {
	slug := strings.ToLower(input)
	slug = strings.TrimSpace(slug)
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}

// FormatNPR renders a whole-rupee amount with the fixed currency prefix
// and two decimal places, e.g. 300 -> "रु 300.00".
func FormatNPR(amount int64) string {
	return fmt.Sprintf("रु %.2f", float64(amount))
}

// TruncateID shortens an identifier for display and filenames.
func TruncateID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PtrInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
