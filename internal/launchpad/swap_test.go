package launchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSwapForm(t *testing.T) {
	t.Parallel()

	form := DefaultSwapForm()
	assert.Equal(t, SwapForm{From: "SUI", To: "DESCI", Slippage: "0.5"}, form)
	assert.Equal(t, "0", form.RequestAmount())
}

func TestSwapFormNormalize(t *testing.T) {
	t.Parallel()

	got := SwapForm{From: " desci ", To: "", Amount: " 12.5 ", Slippage: "7"}.Normalize()
	assert.Equal(t, "DESCI", got.From)
	assert.Equal(t, DefaultToToken, got.To)
	assert.Equal(t, " 12.5 ", got.Amount)
	assert.Equal(t, DefaultSlippage, got.Slippage)
	assert.Equal(t, "12.5", got.RequestAmount())

	kept := SwapForm{From: "SUI", To: "ALP", Slippage: "2.0"}.Normalize()
	assert.Equal(t, "2.0", kept.Slippage)
}

func TestMockQuoteEchoesForm(t *testing.T) {
	t.Parallel()

	tests := []SwapForm{
		{From: "SUI", To: "DESCI", Amount: "10", Slippage: "0.5"},
		{From: "DESCI", To: "USDC", Amount: "", Slippage: "1.0"},
	}
	for _, form := range tests {
		quote := MockQuote(form)
		assert.Equal(t, "MOCK", quote.Status)
		assert.Equal(t, form.From, quote.From)
		assert.Equal(t, form.To, quote.To)
		assert.Equal(t, form.RequestAmount(), quote.Amount)
		assert.Equal(t, form.Slippage, quote.Slippage)
		assert.Equal(t, "Best-route placeholder", quote.Route)
		assert.Equal(t, "—", quote.ExpectedOut)
	}
}

func TestDecodeQuote(t *testing.T) {
	t.Parallel()

	quote, ok := DecodeQuote([]byte(`{"status":"OK","route":"SUI>DESCI","expected_out":12.5,"extra":{"x":1}}`))
	require.True(t, ok)
	assert.Equal(t, "OK", quote.Status)
	assert.Equal(t, "SUI>DESCI", quote.Route)
	assert.Equal(t, "12.5", quote.ExpectedOut)

	_, ok = DecodeQuote([]byte(`[]`))
	assert.False(t, ok)
	_, ok = DecodeQuote(nil)
	assert.False(t, ok)
}

func TestTokenOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"SUI", "DESCI"}, TokenOptions(Project{}))
	assert.Equal(t, []string{"SUI", "DESCI", "ALP", "USDC"}, TokenOptions(Project{ShortSymbol: "alp", RaiseCurrency: "usdc"}))
	assert.Equal(t, []string{"SUI", "DESCI", "GENE"}, TokenOptions(Project{TokenSymbol: "gene", ShortSymbol: "x", RaiseCurrency: "sui"}))
}
