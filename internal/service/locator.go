package service

import (
	"net/url"
	"strings"
)

// Locator builds canonical resource URLs such as http://localhost:8000/card/<id>.
type Locator struct {
	baseURL string
}

// NewLocator creates a Locator rooted at baseURL. A trailing slash is ignored.
func NewLocator(baseURL string) Locator {
	return Locator{baseURL: strings.TrimRight(baseURL, "/")}
}

// Card returns the URL of the card with the given id.
func (l Locator) Card(id string) string {
	return l.baseURL + "/card/" + url.PathEscape(id)
}

// List returns the URL of the list with the given id.
func (l Locator) List(id string) string {
	return l.baseURL + "/list/" + url.PathEscape(id)
}
