// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	Health           = "/up"
	StaticPrefix     = "/static/"
	Launches         = "/launches"
	LaunchesPrefix   = "/launches/"
	Shop             = "/shop"
	Docs             = "/docs"
	Blog             = "/blog"
	Apply            = "/apply"
	WalletPrefix     = "/wallet/"
	WalletConnect    = "/wallet/connect"
	WalletDisconnect = "/wallet/disconnect"

	LaunchPattern           = LaunchesPrefix + "{token}"
	LaunchVotePattern       = LaunchesPrefix + "{token}/views/{viewID}/vote"
	LaunchSwapQuotePattern  = LaunchesPrefix + "{token}/views/{viewID}/swap/quote"
	LaunchSwapExecPattern   = LaunchesPrefix + "{token}/views/{viewID}/swap/execute"
	LaunchSwapGuardPattern  = LaunchesPrefix + "{token}/views/{viewID}/swap/guard"
	LaunchFeedPattern       = LaunchesPrefix + "{token}/views/{viewID}/feed"
	LaunchViewQueryKey      = "view"
	LaunchParticipateAnchor = "participate"
)

// Launch returns the detail page path for a project token.
func Launch(token string) string {
	return LaunchesPrefix + escapeSegment(token)
}

// LaunchView returns the detail page path re-attached to a live page view.
func LaunchView(token string, viewID string) string {
	viewID = strings.TrimSpace(viewID)
	if viewID == "" {
		return Launch(token)
	}
	return Launch(token) + "?" + LaunchViewQueryKey + "=" + url.QueryEscape(viewID)
}

// LaunchParticipate returns LaunchView scrolled to the participate panel.
func LaunchParticipate(token string, viewID string) string {
	return LaunchView(token, viewID) + "#" + LaunchParticipateAnchor
}

// LaunchVote returns the sentiment vote endpoint of a page view.
func LaunchVote(token string, viewID string) string {
	return launchViewPath(token, viewID) + "/vote"
}

// LaunchSwapQuote returns the swap quote endpoint of a page view.
func LaunchSwapQuote(token string, viewID string) string {
	return launchViewPath(token, viewID) + "/swap/quote"
}

// LaunchSwapExecute returns the swap execute endpoint of a page view.
func LaunchSwapExecute(token string, viewID string) string {
	return launchViewPath(token, viewID) + "/swap/execute"
}

// LaunchSwapGuard returns the wallet check endpoint hit when a swap field
// takes focus.
func LaunchSwapGuard(token string, viewID string) string {
	return launchViewPath(token, viewID) + "/swap/guard"
}

// LaunchFeed returns the social feed fragment endpoint of a page view.
func LaunchFeed(token string, viewID string) string {
	return launchViewPath(token, viewID) + "/feed"
}

// StaticFile returns the served path of an embedded asset.
func StaticFile(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func launchViewPath(token string, viewID string) string {
	return Launch(token) + "/views/" + escapeSegment(viewID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
