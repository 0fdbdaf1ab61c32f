package digikey

// AuthRequest represents the OAuth2 client credentials grant payload
type AuthRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AuthResponse represents the OAuth2 token response
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// SortOptions selects the field and direction for keyword search results
type SortOptions struct {
	Field     string `json:"Field"`
	SortOrder string `json:"SortOrder"`
}

// KeywordSearchRequest is the POST body for the keyword search endpoint.
// Field names follow the upstream API's PascalCase convention.
type KeywordSearchRequest struct {
	Keywords         string       `json:"Keywords"`
	Limit            int          `json:"Limit"`
	ManufacturerID   string       `json:"ManufacturerId,omitempty"`
	CategoryID       string       `json:"CategoryId,omitempty"`
	SearchOptionList []string     `json:"SearchOptionList,omitempty"`
	SortOptions      *SortOptions `json:"SortOptions,omitempty"`
}

// KeywordSearchParams holds the inputs for KeywordSearch. Zero values mean
// the upstream defaults apply.
type KeywordSearchParams struct {
	Keywords       string
	Limit          int
	ManufacturerID string
	CategoryID     string
	// SearchOptions is a comma-delimited filter list; the keyword endpoint
	// expects it split into an array.
	SearchOptions string
	SortField     string
	SortOrder     string
}

// ProductDetailsParams holds the inputs for ProductDetails.
type ProductDetailsParams struct {
	ProductNumber  string
	ManufacturerID string
	CustomerID     string
}

// SubstitutionsParams holds the inputs for ProductSubstitutions.
type SubstitutionsParams struct {
	ProductNumber string
	Limit         int
	// SearchOptions is passed through to the query string as-is, unsplit.
	SearchOptions      string
	ExcludeMarketplace bool
}

// PricingParams holds the inputs for ProductPricing.
type PricingParams struct {
	ProductNumber     string
	CustomerID        string
	RequestedQuantity int
}

// DigiReelPricingParams holds the inputs for DigiReelPricing. The requested
// quantity is required upstream and sent exactly as given.
type DigiReelPricingParams struct {
	ProductNumber     string
	RequestedQuantity int
	CustomerID        string
}
