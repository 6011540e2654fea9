package launchpad

import (
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// Swap widget defaults.
const (
	DefaultFromToken = "SUI"
	DefaultToToken   = "DESCI"
	DefaultSlippage  = "0.5"
)

// Filler values used when no live quote could be fetched.
const (
	MockQuoteStatus      = "MOCK"
	MockQuoteRoute       = "Best-route placeholder"
	MockQuoteExpectedOut = "—"
)

// SlippageOptions lists the tolerances offered by the swap widget, in percent.
var SlippageOptions = []string{"0.1", "0.5", "1.0", "2.0"}

// SwapForm is the swap widget input.
type SwapForm struct {
	From     string
	To       string
	Amount   string
	Slippage string
}

// DefaultSwapForm returns the widget's initial input.
func DefaultSwapForm() SwapForm {
	return SwapForm{From: DefaultFromToken, To: DefaultToToken, Slippage: DefaultSlippage}
}

// Normalize fills empty tokens and unsupported slippage with defaults. The
// amount stays free text.
func (f SwapForm) Normalize() SwapForm {
	f.From = strings.ToUpper(strings.TrimSpace(f.From))
	if f.From == "" {
		f.From = DefaultFromToken
	}
	f.To = strings.ToUpper(strings.TrimSpace(f.To))
	if f.To == "" {
		f.To = DefaultToToken
	}
	f.Slippage = strings.TrimSpace(f.Slippage)
	if !slices.Contains(SlippageOptions, f.Slippage) {
		f.Slippage = DefaultSlippage
	}
	return f
}

// RequestAmount is the amount sent to the backend; blank becomes "0".
func (f SwapForm) RequestAmount() string {
	amount := strings.TrimSpace(f.Amount)
	if amount == "" {
		return "0"
	}
	return amount
}

// Quote is the swap quote preview. The backend schema is opaque beyond the
// fields shown here.
type Quote struct {
	Status      string
	From        string
	To          string
	Amount      string
	Slippage    string
	Route       string
	ExpectedOut string
}

// DecodeQuote reads a backend quote payload. ok is false when the payload
// is not a JSON object.
func DecodeQuote(payload []byte) (Quote, bool) {
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return Quote{}, false
	}
	return Quote{
		Status:      stringField(root, "status"),
		From:        stringField(root, "from"),
		To:          stringField(root, "to"),
		Amount:      stringField(root, "amount"),
		Slippage:    stringField(root, "slippage"),
		Route:       stringField(root, "route"),
		ExpectedOut: stringField(root, "expected_out"),
	}, true
}

// MockQuote is the placeholder shown when a quote request fails. It echoes
// the submitted parameters.
func MockQuote(form SwapForm) Quote {
	return Quote{
		Status:      MockQuoteStatus,
		From:        form.From,
		To:          form.To,
		Amount:      form.RequestAmount(),
		Slippage:    form.Slippage,
		Route:       MockQuoteRoute,
		ExpectedOut: MockQuoteExpectedOut,
	}
}

// TokenOptions lists the swap selector tokens for a project: SUI and DESCI
// followed by the project's token and raise currency, upper-cased and
// deduplicated.
func TokenOptions(project Project) []string {
	options := []string{DefaultFromToken, DefaultToToken}
	for _, candidate := range []string{project.DisplaySymbol(), project.RaiseCurrency} {
		candidate = strings.ToUpper(candidate)
		if candidate == "" || slices.Contains(options, candidate) {
			continue
		}
		options = append(options, candidate)
	}
	return options
}
