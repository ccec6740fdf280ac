// Package avatar derives tripmate avatar URLs from the DiceBear service.
// The same seed always yields the same image, so avatars need no storage.
package avatar

import "net/url"

const baseURL = "https://api.dicebear.com/7.x/avataaars/svg"

// URL returns the deterministic avatar image URL for a seed string,
// typically a tripmate's name. No network call is made.
func URL(seed string) string {
	return baseURL + "?seed=" + url.QueryEscape(seed)
}
