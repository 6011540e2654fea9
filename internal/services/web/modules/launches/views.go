package launches

import (
	"math"
	"strconv"
	"strings"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/xembed"
	"github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"github.com/dustin/go-humanize"
)

// pageRef addresses one live page view of a launch.
type pageRef struct {
	token  string
	viewID string
}

func detailView(ref pageRef, state viewstate.State, viewer module.Viewer) webtemplates.DetailView {
	project := state.Project
	view := webtemplates.DetailView{
		Name:         project.Name,
		Symbol:       project.DisplaySymbol(),
		Description:  project.Description,
		ProjectType:  project.ProjectType,
		HeroImageURL: project.HeroImageURL,
		LogoURL:      project.LogoURL,
		StatusLabel:  launchpad.FormatStatus(project.Status),
		StatusClass:  launchpad.StatusClass(project.Status),
		Raise: webtemplates.RaiseView{
			Currency:      launchpad.OrPlaceholder(project.RaiseCurrency),
			HardCap:       formatAmount(project.HardCap),
			SoftCap:       formatAmount(project.SoftCap),
			TicketSize:    ticketSize(project),
			PricePerToken: launchpad.OrPlaceholder(project.PricePerToken),
			TokenSymbol:   launchpad.OrPlaceholder(project.DisplaySymbol()),
			Progress:      launchpad.ClampProgress(project.ProgressPercent),
			ProgressLabel: launchpad.ProgressLabel(project.ProgressPercent),
		},
		Market: webtemplates.MarketView{
			TAM:               formatAmount(project.MarketTAM),
			PerPatientRevenue: formatAmount(project.PerPatientRevenue),
			PatientReach:      formatAmount(project.PatientReach),
		},
		ProjectTokenAddress: launchpad.OrPlaceholder(project.ProjectTokenAddress),
		SuiRaiseAddress:     launchpad.OrPlaceholder(project.SuiRaiseAddress),
		Sentiment:           sentimentView(ref, state.Sentiment),
		Participate: webtemplates.ParticipateView{
			ReturnTo: routepath.LaunchParticipate(ref.token, ref.viewID),
			Wallet:   walletView(viewer),
			Swap:     swapView(ref, state, viewer),
		},
		Feed: initialFeedView(ref, project),
	}
	if strings.TrimSpace(project.XURL) != "" {
		view.SocialURL = launchpad.SafeExternalURL(project.XURL)
	}
	return view
}

func sentimentView(ref pageRef, sentiment launchpad.Sentiment) webtemplates.SentimentView {
	return webtemplates.SentimentView{
		VoteURL:    routepath.LaunchVote(ref.token, ref.viewID),
		Upvotes:    sentiment.Upvotes,
		Downvotes:  sentiment.Downvotes,
		Percentage: sentiment.Percentage(),
		Vote:       string(sentiment.Vote),
	}
}

func swapView(ref pageRef, state viewstate.State, viewer module.Viewer) webtemplates.SwapView {
	form := state.Swap.Normalize()
	view := webtemplates.SwapView{
		QuoteURL:   routepath.LaunchSwapQuote(ref.token, ref.viewID),
		ExecuteURL: routepath.LaunchSwapExecute(ref.token, ref.viewID),
		GuardURL:   routepath.LaunchSwapGuard(ref.token, ref.viewID),
		Connected:  viewer.Connected(),
		From:       form.From,
		To:         form.To,
		Amount:     form.Amount,
		Slippage:   form.Slippage,
		Tokens:     launchpad.TokenOptions(state.Project),
		Slippages:  launchpad.SlippageOptions,
		Busy:       state.Busy,
	}
	if state.Quote != nil {
		view.Quote = &webtemplates.QuoteView{
			Status:      launchpad.OrPlaceholder(state.Quote.Status),
			Route:       launchpad.OrPlaceholder(state.Quote.Route),
			ExpectedOut: launchpad.OrPlaceholder(state.Quote.ExpectedOut),
		}
	}
	return view
}

func walletView(viewer module.Viewer) webtemplates.WalletView {
	return webtemplates.WalletView{Address: viewer.WalletAddress, Short: viewer.WalletShort}
}

// initialFeedView is the feed card before the browser asks for the timeline.
func initialFeedView(ref pageRef, project launchpad.Project) webtemplates.FeedView {
	handle := xembed.NormalizeHandle(project.XURL)
	if handle == "" {
		return webtemplates.FeedView{State: webtemplates.FeedMissing}
	}
	return webtemplates.FeedView{
		State:      webtemplates.FeedPending,
		LoadURL:    routepath.LaunchFeed(ref.token, ref.viewID),
		Handle:     handle,
		ProfileURL: xembed.ProfileURL(handle),
	}
}

func feedView(embed xembed.Embed) webtemplates.FeedView {
	if embed.Handle == "" {
		return webtemplates.FeedView{State: webtemplates.FeedMissing}
	}
	state := webtemplates.FeedFailed
	if embed.Loaded() {
		state = webtemplates.FeedLoaded
	}
	return webtemplates.FeedView{State: state, Handle: embed.Handle, ProfileURL: embed.ProfileURL}
}

// formatAmount groups thousands in numeric backend values and leaves any
// other text untouched.
func formatAmount(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return launchpad.Placeholder
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return value
	}
	return humanize.Commaf(number)
}

// ticketSize renders "min – max CUR".
func ticketSize(project launchpad.Project) string {
	minimum := strings.TrimSpace(project.MinContribution)
	maximum := strings.TrimSpace(project.MaxContribution)
	if minimum == "" && maximum == "" {
		return launchpad.Placeholder
	}
	size := formatAmount(minimum) + " – " + formatAmount(maximum)
	if currency := strings.TrimSpace(project.RaiseCurrency); currency != "" {
		size += " " + currency
	}
	return size
}
