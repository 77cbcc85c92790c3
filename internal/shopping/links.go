package shopping

import "net/url"

// CoupangLink returns a Coupang search URL for an ingredient.
func CoupangLink(ingredient string) string {
	return "https://www.coupang.com/np/search?q=" + url.QueryEscape(ingredient) + "&channel=user"
}

// KurlyLink returns a Kurly search URL for an ingredient.
func KurlyLink(ingredient string) string {
	return "https://www.kurly.com/search?sword=" + url.QueryEscape(ingredient)
}
