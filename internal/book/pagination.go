package book

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Window is a resolved pagination window over a counted result set.
type Window struct {
	Page    int
	PerPage int
	Offset  int
	Total   int
}

// NewWindow resolves the requested page and per-page strings against the
// configured default and maximum. Non-numeric or non-positive values fall
// back to the defaults; per-page is capped at max; offsets never go
// negative (page < 1 behaves as page 1).
func NewWindow(pageParam, perPageParam string, total, defaultPerPage, maxPerPage int) Window {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(perPageParam)
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	// Cap the page so the offset cannot wrap negative; an absurd page
	// number still lands past the end of the result set.
	if page-1 > (math.MaxInt-perPage)/perPage {
		page = (math.MaxInt-perPage)/perPage + 1
	}

	offset := (page - 1) * perPage
	if offset < 0 {
		offset = 0
	}

	return Window{Page: page, PerPage: perPage, Offset: offset, Total: total}
}

// HasPrevious reports whether a page precedes the current one.
func (w Window) HasPrevious() bool {
	return w.Page > 1
}

// HasNext reports whether rows remain beyond the current window.
func (w Window) HasNext() bool {
	return w.Offset+w.PerPage < w.Total
}

// Links is the navigation block returned with every search response. Prev
// and Next are path+query strings with the origin stripped, present only
// when the corresponding page exists.
type Links struct {
	Base    string `json:"base"`
	Context string `json:"context"`
	Self    string `json:"self"`
	Prev    string `json:"prev,omitempty"`
	Next    string `json:"next,omitempty"`
}

// Links derives the navigation links from the incoming request URL,
// replacing only the page query parameter for prev/next.
func (w Window) Links(r *http.Request) Links {
	origin := requestOrigin(r)

	l := Links{
		Base:    origin,
		Context: "",
		Self:    origin + r.URL.RequestURI(),
	}
	if w.HasPrevious() {
		l.Prev = pageLink(r, w.Page-1)
	}
	if w.HasNext() {
		l.Next = pageLink(r, w.Page+1)
	}
	return l
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// pageLink rewrites only the page parameter, keeping the caller's other
// parameters in the order they were sent.
func pageLink(r *http.Request, page int) string {
	pageParam := "page=" + strconv.Itoa(page)

	raw := r.URL.RawQuery
	if raw == "" {
		return r.URL.Path + "?" + pageParam
	}

	parts := strings.Split(raw, "&")
	replaced := false
	for i, p := range parts {
		if p == "page" || strings.HasPrefix(p, "page=") {
			parts[i] = pageParam
			replaced = true
		}
	}
	if !replaced {
		parts = append(parts, pageParam)
	}
	return r.URL.Path + "?" + strings.Join(parts, "&")
}
