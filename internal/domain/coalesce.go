package domain

import "strings"

// CoalesceStr returns the first non-blank string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// StrFromPtr returns *p, or fallback when p is nil.
func StrFromPtr(fallback string, p *string) string {
	if p != nil {
		return *p
	}
	return fallback
}
