package http

import (
	"net/http"
	"net/url"
	"strings"

	"request-metrics/internal/shared/metrics"
)

// RouteKind tells how the metrics endpoint treats a request.
type RouteKind int

const (
	// RouteDelegate passes the request on to the application.
	RouteDelegate RouteKind = iota
	// RouteList serves the namespace listing.
	RouteList
	// RouteExport serves the metrics of RouteMatch.Namespace.
	RouteExport
)

// RouteMatch is the outcome of matching a request against the endpoint prefix.
type RouteMatch struct {
	Kind      RouteKind
	Namespace string
}

// MatchRoute matches GET requests whose path starts with the prefix segments.
// Segments after the prefix are joined with "/" into a namespace name.
func MatchRoute(prefix []string, r *http.Request) RouteMatch {
	if r.Method != http.MethodGet {
		return RouteMatch{Kind: RouteDelegate}
	}

	segments := pathSegments(r.URL)
	if len(segments) < len(prefix) {
		return RouteMatch{Kind: RouteDelegate}
	}
	for i, want := range prefix {
		if segments[i] != want {
			return RouteMatch{Kind: RouteDelegate}
		}
	}

	rest := segments[len(prefix):]
	if len(rest) == 0 {
		return RouteMatch{Kind: RouteList}
	}
	return RouteMatch{Kind: RouteExport, Namespace: metrics.JoinNamespace(rest...)}
}

// pathSegments splits the escaped path on "/" and unescapes each segment.
// Empty segments are dropped, so "/metrics/" and "/metrics" are the same path.
func pathSegments(u *url.URL) []string {
	var segments []string
	for _, raw := range strings.Split(u.EscapedPath(), "/") {
		if raw == "" {
			continue
		}
		segment, err := url.PathUnescape(raw)
		if err != nil {
			segment = raw
		}
		segments = append(segments, segment)
	}
	return segments
}
