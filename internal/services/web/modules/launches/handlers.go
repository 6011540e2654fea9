package launches

import (
	"errors"
	"net/http"
	"strings"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/flash"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"github.com/sirupsen/logrus"
)

// walletRequiredEvent is the client event that brings the participate
// panel into view.
const walletRequiredEvent = "wallet-required"

const (
	toastWalletRequired   = "toast.wallet_required"
	toastQuoteUnavailable = "toast.quote_unavailable"
	toastSwapSubmitted    = "toast.swap_submitted"
	toastSwapUnavailable  = "toast.swap_unavailable"
)

type handlers struct {
	publichandler.Base
	service  service
	views    *viewstate.Store
	notifier *sentimentNotifier
}

func newHandlers(s service, views *viewstate.Store, notifier *sentimentNotifier, base publichandler.Base) handlers {
	return handlers{Base: base, service: s, views: views, notifier: notifier}
}

func requestRef(r *http.Request) pageRef {
	return pageRef{
		token:  strings.TrimSpace(r.PathValue("token")),
		viewID: strings.TrimSpace(r.PathValue("viewID")),
	}
}

// handleDetail renders the detail page. A live ?view= that still shows the
// same launch is re-attached; anything else opens a fresh view.
func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ref := pageRef{token: strings.TrimSpace(r.PathValue("token"))}

	if view, state, ok := h.reattach(ref.token, r.URL.Query().Get(routepath.LaunchViewQueryKey)); ok {
		ref.viewID = view.ID()
		h.writeDetail(w, r, ref, state)
		return
	}

	project, err := h.service.loadProject(r.Context(), ref.token)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := h.views.Open(viewstate.State{
		Project:   project,
		Sentiment: project.Sentiment(),
		Swap:      launchpad.DefaultSwapForm(),
	})
	state, err := view.Snapshot()
	if err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "page view store is closed"))
		return
	}
	ref.viewID = view.ID()
	h.writeDetail(w, r, ref, state)
}

func (h handlers) reattach(token string, viewID string) (*viewstate.View, viewstate.State, bool) {
	if strings.TrimSpace(viewID) == "" {
		return nil, viewstate.State{}, false
	}
	view, err := h.views.Get(viewID)
	if err != nil {
		return nil, viewstate.State{}, false
	}
	state, err := view.Snapshot()
	if err != nil {
		return nil, viewstate.State{}, false
	}
	if _, err := launchpad.ResolveProject([]launchpad.Project{state.Project}, token); err != nil {
		return nil, viewstate.State{}, false
	}
	return view, state, true
}

func (h handlers) writeDetail(w http.ResponseWriter, r *http.Request, ref pageRef, state viewstate.State) {
	loc := h.Localizer(w, r)
	view := detailView(ref, state, h.ResolveRequestViewer(r))
	h.WritePage(w, r, state.Project.Name, http.StatusOK, webtemplates.DetailPage(view, loc))
}

// handleVote toggles the viewer's vote, re-renders the widget and notifies
// the backend in the background.
func (h handlers) handleVote(w http.ResponseWriter, r *http.Request) {
	ref := requestRef(r)
	view, ok := h.liveView(w, r, ref)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "detail.error.invalid_form", "failed to parse vote form"))
		return
	}
	vote, err := launchpad.ParseVote(r.FormValue("vote"))
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "detail.error.invalid_vote", "invalid vote", err))
		return
	}

	state, err := view.Update(func(s *viewstate.State) {
		s.Sentiment = s.Sentiment.Toggle(vote)
	})
	if err != nil {
		h.writeExpired(w, r, ref)
		return
	}
	h.notifier.notify(state.Project.ID, vote)

	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.LaunchView(ref.token, ref.viewID))
		return
	}
	loc := h.Localizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.SentimentWidget(sentimentView(ref, state.Sentiment), loc), nil)
}

// handleSwapGuard is hit when a swap field takes focus. Connected wallets
// get an empty answer.
func (h handlers) handleSwapGuard(w http.ResponseWriter, r *http.Request) {
	if !h.requireWallet(w, r, requestRef(r)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleSwapQuote(w http.ResponseWriter, r *http.Request) {
	h.runSwap(w, r, func(r *http.Request, view *viewstate.View, form launchpad.SwapForm, _ string) string {
		quote, err := h.service.quote(r.Context(), form)
		// The view may have closed while the backend answered; the quote is
		// then dropped with it.
		_, _ = view.Update(func(s *viewstate.State) { s.Quote = &quote })
		if err != nil {
			h.Logger().WithError(err).WithFields(swapFields(view, form)).Warn("swap quote unavailable, showing mock quote")
			return toastQuoteUnavailable
		}
		return ""
	})
}

func (h handlers) handleSwapExecute(w http.ResponseWriter, r *http.Request) {
	h.runSwap(w, r, func(r *http.Request, view *viewstate.View, form launchpad.SwapForm, walletAddress string) string {
		if err := h.service.execute(r.Context(), form, walletAddress); err != nil {
			h.Logger().WithError(err).WithFields(swapFields(view, form)).Warn("swap execute unavailable")
			return toastSwapUnavailable
		}
		return toastSwapSubmitted
	})
}

// swapOperation performs one backend swap call while the view is busy and
// returns the toast key to show, if any.
type swapOperation func(r *http.Request, view *viewstate.View, form launchpad.SwapForm, walletAddress string) string

// runSwap gates on the wallet, records the submitted form, holds the busy
// flag for the duration of op and renders the outcome.
func (h handlers) runSwap(w http.ResponseWriter, r *http.Request, op swapOperation) {
	ref := requestRef(r)
	if !h.requireWallet(w, r, ref) {
		return
	}
	view, ok := h.liveView(w, r, ref)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "detail.error.invalid_form", "failed to parse swap form"))
		return
	}
	form := launchpad.SwapForm{
		From:     r.FormValue("from"),
		To:       r.FormValue("to"),
		Amount:   r.FormValue("amount"),
		Slippage: r.FormValue("slippage"),
	}.Normalize()

	release, err := view.Acquire()
	switch {
	case errors.Is(err, viewstate.ErrBusy):
		h.WriteError(w, r, apperrors.EK(apperrors.KindConflict, "detail.error.swap_busy", "swap already in progress"))
		return
	case err != nil:
		h.writeExpired(w, r, ref)
		return
	}
	defer release()

	if _, err := view.Update(func(s *viewstate.State) { s.Swap = form }); err != nil {
		h.writeExpired(w, r, ref)
		return
	}
	toastKey := op(r, view, form, h.ResolveRequestViewer(r).WalletAddress)
	release()

	state, err := view.Snapshot()
	if err != nil {
		h.writeExpired(w, r, ref)
		return
	}
	notice := swapNotice(toastKey)
	if !httpx.IsHTMXRequest(r) {
		if notice != nil {
			flash.Write(w, r, *notice)
		}
		httpx.WriteRedirect(w, r, routepath.LaunchParticipate(ref.token, ref.viewID))
		return
	}
	loc := h.Localizer(w, r)
	var toast *webtemplates.Toast
	if notice != nil {
		t := webtemplates.NewToast(loc, notice.Key, notice.Destructive())
		toast = &t
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.SwapWidget(swapView(ref, state, h.ResolveRequestViewer(r)), loc), toast)
}

func swapNotice(key string) *flash.Notice {
	var notice flash.Notice
	switch key {
	case "":
		return nil
	case toastSwapSubmitted:
		notice = flash.NoticeSuccess(key)
	default:
		notice = flash.NoticeError(key)
	}
	return &notice
}

func swapFields(view *viewstate.View, form launchpad.SwapForm) logrus.Fields {
	return logrus.Fields{
		"view_id":  view.ID(),
		"from":     form.From,
		"to":       form.To,
		"slippage": form.Slippage,
	}
}

// requireWallet reports whether the viewer has a wallet attached. When not,
// it raises the connect prompt and scrolls the participate panel into view.
// Wallet state is never changed here.
func (h handlers) requireWallet(w http.ResponseWriter, r *http.Request, ref pageRef) bool {
	if h.ResolveRequestViewer(r).Connected() {
		return true
	}
	notice := flash.NoticeInfo(toastWalletRequired)
	if !httpx.IsHTMXRequest(r) {
		flash.Write(w, r, notice)
		httpx.WriteRedirect(w, r, routepath.LaunchParticipate(ref.token, ref.viewID))
		return false
	}
	loc := h.Localizer(w, r)
	toast := webtemplates.NewToast(loc, notice.Key, notice.Destructive())
	httpx.SetHXTrigger(w, walletRequiredEvent)
	httpx.SetHXReswap(w, "none")
	h.WriteFragment(w, r, http.StatusOK, nil, &toast)
	return false
}

// handleFeed renders the social timeline card for the view's launch.
func (h handlers) handleFeed(w http.ResponseWriter, r *http.Request) {
	ref := requestRef(r)
	view, ok := h.liveView(w, r, ref)
	if !ok {
		return
	}
	state, err := view.Snapshot()
	if err != nil {
		h.writeExpired(w, r, ref)
		return
	}
	loc := h.Localizer(w, r)
	feed := webtemplates.FeedView{State: webtemplates.FeedMissing}
	if xURL := strings.TrimSpace(state.Project.XURL); xURL != "" {
		feed = feedView(h.service.loadFeed(r.Context(), xURL))
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.FeedBody(feed, loc), nil)
}

// liveView looks up the page view addressed by the request and answers with
// the expired fragment when it is gone.
func (h handlers) liveView(w http.ResponseWriter, r *http.Request, ref pageRef) (*viewstate.View, bool) {
	view, err := h.views.Get(ref.viewID)
	if err != nil {
		h.writeExpired(w, r, ref)
		return nil, false
	}
	return view, true
}

func (h handlers) writeExpired(w http.ResponseWriter, r *http.Request, ref pageRef) {
	loc := h.Localizer(w, r)
	if httpx.IsHTMXRequest(r) {
		h.WriteFragment(w, r, http.StatusGone, webtemplates.ExpiredFragment(loc), nil)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.error.view_expired"), http.StatusGone, webtemplates.ExpiredFragment(loc))
}
