package catalog

import "encoding/json"

// SearchResponse is the catalog search result envelope.
type SearchResponse struct {
	Data []SearchItem `json:"data"`
}

// SearchItem is one product entry in a search response.
type SearchItem struct {
	Attributes struct {
		ProductID json.Number `json:"productId"`
	} `json:"attributes"`
}

// ProductDocument is the raw JSON document for one product. The attribute
// fields are kept as raw JSON so that one absent or malformed field cannot
// break decoding of its siblings; each field is parsed independently by the
// extractors in parse.go.
type ProductDocument struct {
	Data struct {
		Attributes ProductAttributes `json:"attributes"`
	} `json:"data"`
	Included []IncludedEntity `json:"included"`
}

// ProductAttributes holds the per-product attribute fields, undecoded.
type ProductAttributes struct {
	Description  json.RawMessage `json:"description"`
	Authors      json.RawMessage `json:"authors"`
	Artists      json.RawMessage `json:"artists"`
	Editors      json.RawMessage `json:"editors"`
	Contributors json.RawMessage `json:"contributors"`
	ISBN         json.RawMessage `json:"isbn"`
	Image        json.RawMessage `json:"image"`
	DateCreated  json.RawMessage `json:"dateCreated"`
}

// productDescription is the nested description object inside attributes.
type productDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IncludedEntity is one typed side-entity (Publisher, Category, Filter)
// from the document's included array.
type IncludedEntity struct {
	Type       string `json:"type"`
	Attributes struct {
		Name         string `json:"name"`
		Descriptions []struct {
			Name string `json:"name"`
		} `json:"descriptions"`
	} `json:"attributes"`
}
