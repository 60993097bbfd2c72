package util

import (
	"fmt"
	"github.com/lsulibraries/ldlpost/constants"
	"strings"
)

// Returns the PID at the end of a Fedora URI. The URI is split on
// slashes and the second segment is returned, so
// 'info:fedora/amistad:42' becomes 'amistad:42'. Returns an empty
// string if the URI has no second segment.
func PidFromUri(uri string) (string) {
	parts := strings.Split(uri, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Splits a PID like 'amistad-pgoudvis:12' into its namespace
// ('amistad-pgoudvis') and object number ('12'). Returns an error
// if the PID has no colon.
func PidParts(pid string) (namespace string, number string, err error) {
	parts := strings.SplitN(pid, ":", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("PID '%s' should look like 'namespace:number'", pid)
	}
	return parts[0], parts[1], nil
}

// Returns the institution prefix of a PID, which is everything before
// the first dash. For 'amistad-pgoudvis:12' that's 'amistad'. PIDs
// without a dash, like 'lsu:3', return everything before the colon.
func InstitutionPrefix(pid string) (string) {
	prefix := strings.SplitN(pid, "-", 2)[0]
	return strings.SplitN(prefix, ":", 2)[0]
}

// Cleans a string we might find a config file, trimming leading
// and trailing spaces, single quotes and double quoted. Note that
// leading and trailing spaces inside the quotes are not trimmed.
func CleanString(str string) (string) {
	cleanStr := strings.TrimSpace(str)
	// Strip leading and traling quotes, but only if string has matching
	// quotes at both ends.
	if len(cleanStr) < 2 {
		return cleanStr
	}
	if strings.HasPrefix(cleanStr, "'") && strings.HasSuffix(cleanStr, "'") ||
		strings.HasPrefix(cleanStr, "\"") && strings.HasSuffix(cleanStr, "\"") {
		return cleanStr[1 : len(cleanStr)-1]
	}
	return cleanStr
}

// Returns true if the list of strings contains item.
func StringListContains(list []string, item string) (bool) {
	if list != nil {
		for i := range list {
			if list[i] == item {
				return true
			}
		}
	}
	return false
}

// Returns the index of item in list, or -1.
func StringListIndex(list []string, item string) (int) {
	for i := range list {
		if list[i] == item {
			return i
		}
	}
	return -1
}

// Returns true if uri is one of the known content model URIs.
func IsContentModel(uri string) (bool) {
	return StringListContains(constants.ContentModels, uri)
}
