package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const tokenPrefix = "offset"

// EncodeToken creates an opaque token pointing at the row offset of the next page.
func EncodeToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(tokenPrefix + "|" + strconv.Itoa(offset)))
}

// DecodeToken parses a token produced by EncodeToken back into a row offset.
func DecodeToken(token string) (int, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != tokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	return offset, nil
}

// NextToken returns the token of the page after one that started at offset and held
// count rows out of total, or nil when it was the last page.
func NextToken(offset, count, total int) *string {
	next := offset + count
	if count == 0 || next >= total {
		return nil
	}
	token := EncodeToken(next)
	return &token
}

// ClampLimit bounds a requested page size to (0, max], using def for a non-positive request.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// PageOffset converts a 1-based page number into a row offset. Pages below 1 map to 0.
func PageOffset(page, limit int) int {
	if page < 1 || limit <= 0 {
		return 0
	}
	return (page - 1) * limit
}

// Meta describes where a page sits within the full result.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// NewMeta computes page metadata for a page of size limit starting at offset.
func NewMeta(offset, limit, total int) Meta {
	if limit <= 0 {
		return Meta{Page: 1, PageSize: total, TotalPages: 1, Total: total}
	}
	return Meta{
		Page:       offset/limit + 1,
		PageSize:   limit,
		TotalPages: (total + limit - 1) / limit,
		Total:      total,
	}
}
