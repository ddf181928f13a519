package reddit

import (
	"net/url"
	"time"
)

// Site is the canonical host used for links produced in the UI.
const Site = "https://www.reddit.com"

// PlaceholderThumbnail stands in for posts without a usable thumbnail URL.
const PlaceholderThumbnail = "emptyThumb.jpg"

// Listing mirrors the envelope of /r/{name}/new.json.
type Listing struct {
	Data ListingData `json:"data"`
}

type ListingData struct {
	Children []Child `json:"children"`
	After    string  `json:"after"`
}

type Child struct {
	Data Post `json:"data"`
}

// Post is a single listing entry. CreatedUTC comes over the wire as
// fractional epoch seconds.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Thumbnail   string  `json:"thumbnail"`
	Selftext    string  `json:"selftext"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

// Page is one fetched page of a listing. An empty After means the listing
// is exhausted.
type Page struct {
	Posts []Post
	After string
}

// SubredditListing mirrors the envelope of /subreddits/search.json.
type SubredditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				DisplayName string `json:"display_name"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Created returns the post creation time.
func (p Post) Created() time.Time {
	return time.Unix(int64(p.CreatedUTC), 0)
}

// DetailURL returns the full link to the post's detail page. Posts without
// a permalink link nowhere meaningful.
func (p Post) DetailURL() string {
	if p.Permalink == "" {
		return "#"
	}
	return Site + p.Permalink
}

// ProfileURL returns the full link to an author's profile page.
func ProfileURL(author string) string {
	return Site + "/user/" + url.QueryEscape(author)
}

// ResolveThumbnail returns the URL to display for a post thumbnail.
// Reddit uses the sentinel values "self", "image" and "default" (or an empty
// string) instead of a URL for posts without a preview image.
func ResolveThumbnail(thumbnail string) string {
	switch thumbnail {
	case "", "self", "image", "default":
		return PlaceholderThumbnail
	}
	return thumbnail
}
