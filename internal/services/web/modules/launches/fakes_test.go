package launches

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/xembed"
	"github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/walletcookie"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"golang.org/x/time/rate"
)

const testWallet = "0x00000000000000000000000000000000000000000000000000000000000abcde"

type recordedVote struct {
	projectID string
	vote      launchpad.Vote
}

type recordedExecute struct {
	form   launchpad.SwapForm
	wallet string
}

// fakeGateway implements LaunchpadGateway with canned answers and records
// every mutation it receives.
type fakeGateway struct {
	mu sync.Mutex

	projects   []launchpad.Project
	listErr    error
	listCalls  int
	quote      launchpad.Quote
	quoteErr   error
	quoteForms []launchpad.SwapForm
	executeErr error
	executes   []recordedExecute
	voteErr    error
	votes      []recordedVote
}

func (f *fakeGateway) ListProjects(context.Context) ([]launchpad.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f *fakeGateway) RecordSentiment(_ context.Context, projectID string, vote launchpad.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.votes = append(f.votes, recordedVote{projectID: projectID, vote: vote})
	return f.voteErr
}

func (f *fakeGateway) Quote(_ context.Context, form launchpad.SwapForm) (launchpad.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quoteForms = append(f.quoteForms, form)
	if f.quoteErr != nil {
		return launchpad.Quote{}, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeGateway) Execute(_ context.Context, form launchpad.SwapForm, walletAddress string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.executes = append(f.executes, recordedExecute{form: form, wallet: walletAddress})
	return f.executeErr
}

func (f *fakeGateway) backendMutations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.quoteForms) + len(f.executes)
}

// fakeFeedLoader returns a fixed embed state for any reference.
type fakeFeedLoader struct {
	state xembed.State
	refs  []string
}

func (f *fakeFeedLoader) Load(_ context.Context, ref string) xembed.Embed {
	f.refs = append(f.refs, ref)
	handle := xembed.NormalizeHandle(ref)
	if handle == "" {
		return xembed.Embed{State: xembed.StateFailed, Err: xembed.ErrNoHandle}
	}
	return xembed.Embed{Handle: handle, ProfileURL: xembed.ProfileURL(handle), State: f.state, Attempts: 1}
}

func sampleProject() launchpad.Project {
	up, down := 73, 10
	return launchpad.Project{
		ID:                 "42",
		Slug:               "longevity-dao",
		ShortSymbol:        "LDAO",
		Name:               "Longevity DAO",
		Description:        "Funding open longevity research.",
		ProjectType:        "Longevity",
		Status:             launchpad.StatusPendingReview,
		RaiseCurrency:      "SUI",
		HardCap:            "1000000",
		SoftCap:            "250000",
		MinContribution:    "100",
		MaxContribution:    "5000",
		PricePerToken:      "0.05",
		TokenSymbol:        "LONG",
		ProgressPercent:    42,
		XURL:               "https://x.com/longevitydao",
		SentimentUpvotes:   &up,
		SentimentDownvotes: &down,
	}
}

type testEnv struct {
	gateway  *fakeGateway
	feeds    *fakeFeedLoader
	views    *viewstate.Store
	notifier *sentimentNotifier
	mux      *http.ServeMux
}

func newTestEnv(t *testing.T, gateway *fakeGateway) *testEnv {
	t.Helper()

	views := viewstate.NewStore(viewstate.Options{})
	t.Cleanup(views.Close)
	feeds := &fakeFeedLoader{state: xembed.StateLoaded}
	base := publichandler.NewBase(
		publichandler.WithResolveViewer(viewerFromCookie),
		publichandler.WithLogger(logging.Discard()),
	)
	svc := newService(gateway, feeds)
	notifier := newSentimentNotifier(gateway, rate.NewLimiter(rate.Inf, 1), logging.Discard())
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(svc, views, notifier, base))
	return &testEnv{gateway: gateway, feeds: feeds, views: views, notifier: notifier, mux: mux}
}

func viewerFromCookie(r *http.Request) module.Viewer {
	session := walletcookie.Read(r)
	return module.Viewer{WalletAddress: session.Address, WalletShort: session.Short()}
}

func (e *testEnv) openView(project launchpad.Project) (*viewstate.View, pageRef) {
	view := e.views.Open(viewstate.State{
		Project:   project,
		Sentiment: project.Sentiment(),
		Swap:      launchpad.DefaultSwapForm(),
	})
	return view, pageRef{token: project.Slug, viewID: view.ID()}
}

type requestOption func(*http.Request)

func htmx(r *http.Request) {
	r.Header.Set("HX-Request", "true")
}

func withWallet(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: walletcookie.Name, Value: testWallet})
}

func (e *testEnv) do(method string, target string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, opt := range opts {
		opt(req)
	}
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}
