package model

import "strings"

// FormatList renders a list result in the wire format used by every
// enumeration operation: "{a,b,c}" in insertion order, "{}" when empty.
func FormatList(items []string) string {
	return "{" + strings.Join(items, ",") + "}"
}

// Contains reports whether item is present in list.
func Contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of item from list, preserving order.
func Remove(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
