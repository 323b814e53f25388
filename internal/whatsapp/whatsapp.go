// Package whatsapp composes wa.me deep links that open the visitor's own
// WhatsApp app with a pre-filled message. No WhatsApp session is held on the
// server side.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DeepLink builds a wa.me link for the given phone digits. An empty text
// yields a bare chat link. Spaces encode as %20, the form the pages have
// always produced.
func DeepLink(phoneDigits, text string) string {
	if text == "" {
		return fmt.Sprintf("https://wa.me/%s", phoneDigits)
	}
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneDigits, escaped)
}

// QRPNG renders a deep link as a PNG QR code, used for printed collateral at
// the branches.
func QRPNG(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %v", err)
	}
	return png, nil
}
