package ui

import (
	"fmt"
	"strings"
)

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatPrice formats a price for display.
func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// formatStock returns the stock label for a quantity.
func formatStock(quantity int) string {
	if quantity <= 0 {
		return "Out of stock"
	}
	if quantity == 1 {
		return "1 left"
	}
	return fmt.Sprintf("%d in stock", quantity)
}

// splitCategories splits comma-separated input into trimmed, non-empty names.
func splitCategories(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// clamp bounds n to [lo, hi].
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
