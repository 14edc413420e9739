package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// searchPageSize is the fixed number of results requested per search.
const searchPageSize = 6

// Candidate is one resolved product reference from a search: the API detail
// URL plus its position in the search results (0 = most relevant).
type Candidate struct {
	URL       string
	Relevance int
}

// Search issues one catalog search for the given phrase and returns one
// candidate per result item, preserving result order as relevance rank.
// A transport failure or an unparseable body is an error; an empty result
// list is a valid zero-candidate search.
func (c *Client) Search(ctx context.Context, phrase string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("pageSize", strconv.Itoa(searchPageSize))
	params.Set("groupId", "1")
	params.Set("name", phrase)
	params.Set("order[matchWeight]", "desc")
	params.Set("siteId", strconv.Itoa(c.vendor.SiteID))
	params.Set("contentRating[lte]", "1")
	params.Set("status", "1")
	params.Set("partial", "false")

	endpoint := fmt.Sprintf("%s/products?%s", c.vendor.APIURL, params.Encode())

	var response SearchResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("search query %q: %w", phrase, err)
	}

	candidates := make([]Candidate, 0, len(response.Data))
	for i, item := range response.Data {
		id := item.Attributes.ProductID.String()
		if id == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			URL:       c.vendor.DetailURL(id),
			Relevance: i,
		})
	}

	return candidates, nil
}
