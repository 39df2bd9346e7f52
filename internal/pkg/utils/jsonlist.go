package utils

import (
	"encoding/json"
	"strings"
)

// URLsToString converts []string to a JSON string (safe for a text column)
func URLsToString(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(urls)
	return string(data)
}

// StringToURLs converts the DB string back to []string
func StringToURLs(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(s), &urls); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return urls
}

// IDsToString converts []int64 to a JSON string (safe for a text column)
func IDsToString(ids []int64) string {
	if len(ids) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(ids)
	return string(data)
}

// StringToIDs converts the DB string back to []int64
func StringToIDs(s string) []int64 {
	if s == "" || s == "[]" {
		return []int64{}
	}
	var ids []int64
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return []int64{}
	}
	return ids
}
