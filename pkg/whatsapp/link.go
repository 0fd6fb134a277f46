package whatsapp

import (
	"net/url"
	"strings"
)

const (
	baseURL     = "https://wa.me/"
	countryCode = "55"
)

// CleanPhone keeps only the digits of a phone number as typed by a user.
func CleanPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Convert local numbers (DDD + number) to the international form. Numbers
// that already carry the country code are left alone.
func internationalize(digits string) string {
	if strings.HasPrefix(digits, countryCode) && (len(digits) == 12 || len(digits) == 13) {
		return digits
	}
	return countryCode + digits
}

// DeepLink returns the wa.me link that opens a chat with phone, or "" when
// phone has no digits.
func DeepLink(phone string) string {
	digits := CleanPhone(phone)
	if digits == "" {
		return ""
	}
	return baseURL + internationalize(digits)
}

// DeepLinkWithText is DeepLink with a prefilled message.
func DeepLinkWithText(phone, text string) string {
	link := DeepLink(phone)
	if link == "" || text == "" {
		return link
	}
	return link + "?text=" + url.QueryEscape(text)
}
