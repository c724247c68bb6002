package lookup

import (
	"context"
	"strings"

	"bookshelf/internal/platform/jsontree"
)

// StageStatus tags the outcome of one provider call.
type StageStatus int

const (
	// StageUnavailable means the call failed: transport error, timeout, bad status
	// or an undecodable body.
	StageUnavailable StageStatus = iota
	// StageNoData means the provider answered but knows nothing about the ISBN.
	StageNoData
	// StageOK means Fields holds what the provider returned.
	StageOK
)

func (s StageStatus) String() string {
	switch s {
	case StageUnavailable:
		return "unavailable"
	case StageNoData:
		return "no_data"
	case StageOK:
		return "ok"
	default:
		return "unknown"
	}
}

// StageResult is what one provider stage hands back to the resolver.
type StageResult struct {
	Status StageStatus
	Fields Fields
	Err    error
}

// PrimarySource returns the raw openBD document for an ISBN.
type PrimarySource interface {
	Get(ctx context.Context, isbn string) (jsontree.Node, error)
}

// FallbackSource returns the raw Google Books volumes document for an ISBN.
type FallbackSource interface {
	Volumes(ctx context.Context, isbn string) (jsontree.Node, error)
}

func primaryStage(ctx context.Context, src PrimarySource, isbn string) StageResult {
	doc, err := src.Get(ctx, isbn)
	if err != nil {
		return StageResult{Status: StageUnavailable, Err: err}
	}
	fields, ok := parseOpenBD(doc)
	if !ok {
		return StageResult{Status: StageNoData}
	}
	return StageResult{Status: StageOK, Fields: fields}
}

func fallbackStage(ctx context.Context, src FallbackSource, isbn string) StageResult {
	doc, err := src.Volumes(ctx, isbn)
	if err != nil {
		return StageResult{Status: StageUnavailable, Err: err}
	}
	fields, ok := parseGoogleBooks(doc)
	if !ok {
		return StageResult{Status: StageNoData}
	}
	return StageResult{Status: StageOK, Fields: fields}
}

// parseOpenBD reads the first element of the openBD array. A null or missing first
// element reports ok=false.
func parseOpenBD(doc jsontree.Node) (Fields, bool) {
	item := doc.Index(0)
	if !item.Exists() {
		return Fields{}, false
	}

	summary := item.Get("summary")
	onix := item.Get("onix")

	f := Fields{
		Title:     summary.Get("title").String(),
		Author:    summary.Get("author").String(),
		Publisher: summary.Get("publisher").String(),
		CoverURL:  summary.Get("cover").String(),
	}
	if f.Title == "" {
		f.Title = onix.Path("DescriptiveDetail", "TitleDetail", "TitleElement", "TitleText", "content").String()
	}
	if f.CoverURL == "" {
		f.CoverURL = onixCover(onix)
	}
	return f, true
}

// onixCover scans CollateralDetail.SupportingResource in order and returns the first
// non-empty ResourceLink, looking at the first ResourceVersion of each resource.
func onixCover(onix jsontree.Node) string {
	var link string
	onix.Path("CollateralDetail", "SupportingResource").Each(func(_ int, res jsontree.Node) bool {
		link = res.Get("ResourceVersion").Index(0).Get("ResourceLink").String()
		return link == ""
	})
	return link
}

// parseGoogleBooks reads volumeInfo of the first search hit. An empty or missing
// items list reports ok=false.
func parseGoogleBooks(doc jsontree.Node) (Fields, bool) {
	items := doc.Get("items")
	if items.Len() == 0 {
		return Fields{}, false
	}

	vol := items.Index(0).Get("volumeInfo")
	images := vol.Get("imageLinks")

	cover := images.Get("thumbnail").String()
	if cover == "" {
		cover = images.Get("smallThumbnail").String()
	}

	return Fields{
		Title:     vol.Get("title").String(),
		Author:    strings.Join(vol.Get("authors").Strings(), " / "),
		Publisher: vol.Get("publisher").String(),
		CoverURL:  forceHTTPS(cover),
	}, true
}

// forceHTTPS rewrites a leading "http://" and leaves the rest of the URL verbatim.
func forceHTTPS(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
