package tools_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProductSubstitutionsTool(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"ProductSubstitutes":[]}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "search_product_substitutions_tool", map[string]any{
		"product_number":      "296-1721-1-ND",
		"limit":               3,
		"search_options":      "LeadFree,InStock",
		"exclude_marketplace": true,
	})

	assert.False(t, result.IsError)
	assert.Equal(t, `{"ProductSubstitutes":[]}`, resultText(t, result))

	require.NotNil(t, fake.subsParams)
	assert.Equal(t, "296-1721-1-ND", fake.subsParams.ProductNumber)
	assert.Equal(t, 3, fake.subsParams.Limit)
	assert.Equal(t, "LeadFree,InStock", fake.subsParams.SearchOptions, "filters stay comma-delimited")
	assert.True(t, fake.subsParams.ExcludeMarketplace)
}

func TestSearchProductSubstitutionsToolDefaults(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "search_product_substitutions_tool", map[string]any{
		"product_number": "LM358",
	})

	assert.False(t, result.IsError)
	require.NotNil(t, fake.subsParams)
	assert.Empty(t, fake.subsParams.SearchOptions)
	assert.False(t, fake.subsParams.ExcludeMarketplace)
}

func TestGetProductMediaTool(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"MediaLinks":[{"MediaType":"Datasheets"}]}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "get_product_media_tool", map[string]any{
		"product_number": "296-1721-1-ND",
	})

	assert.False(t, result.IsError)
	assert.Equal(t, `{"MediaLinks":[{"MediaType":"Datasheets"}]}`, resultText(t, result))

	require.NotNil(t, fake.mediaProduct)
	assert.Equal(t, "296-1721-1-ND", *fake.mediaProduct)
}

func TestGetProductMediaToolRejectsEmptyProductNumber(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "get_product_media_tool", map[string]any{"product_number": ""})

	assert.True(t, result.IsError)
	assert.Nil(t, fake.mediaProduct)
}

func TestGetProductPricingTool(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"ProductPricings":[{"UnitPrice":0.42}]}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "get_product_pricing_tool", map[string]any{
		"product_number":     "LM358",
		"customer_id":        "12345",
		"requested_quantity": 2500,
	})

	assert.False(t, result.IsError)
	assert.Equal(t, `{"ProductPricings":[{"UnitPrice":0.42}]}`, resultText(t, result))

	require.NotNil(t, fake.pricingParams)
	assert.Equal(t, "LM358", fake.pricingParams.ProductNumber)
	assert.Equal(t, "12345", fake.pricingParams.CustomerID)
	assert.Equal(t, 2500, fake.pricingParams.RequestedQuantity)
}

func TestGetDigiReelPricingTool(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"ReelingFee":7.0}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "get_digi_reel_pricing_tool", map[string]any{
		"product_number":     "296-1721-1-ND",
		"requested_quantity": 100,
	})

	assert.False(t, result.IsError)
	assert.Equal(t, `{"ReelingFee":7.0}`, resultText(t, result))

	require.NotNil(t, fake.digiReelParams)
	assert.Equal(t, "296-1721-1-ND", fake.digiReelParams.ProductNumber)
	assert.Equal(t, 100, fake.digiReelParams.RequestedQuantity)
	assert.Empty(t, fake.digiReelParams.CustomerID)
}

func TestGetDigiReelPricingToolRejectsNonPositiveQuantity(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{}`)}
	session := newTestSession(t, fake)

	result := callTool(t, session, "get_digi_reel_pricing_tool", map[string]any{
		"product_number":     "296-1721-1-ND",
		"requested_quantity": 0,
	})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Requested quantity must be positive")
	assert.Nil(t, fake.digiReelParams)
}
