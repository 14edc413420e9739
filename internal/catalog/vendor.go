// Package catalog provides a client for the OneBookShelf product catalog API,
// which serves both the DriveThruRPG and WarGameVault storefronts.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Vendor describes one OneBookShelf storefront. The storefronts share the
// same API shape and cover CDN; everything vendor-specific is data.
type Vendor struct {
	// Name is the human-readable storefront name.
	Name string
	// IDKey is the identifier namespace for records and cache entries.
	IDKey string
	// SiteURL is the base URL of the public storefront.
	SiteURL string
	// APIURL is the base URL of the catalog API.
	APIURL string
	// SiteID selects the storefront in catalog search requests.
	SiteID int
	// CoverBaseURL is the CDN prefix the relative image field is appended to.
	CoverBaseURL string
}

var (
	// DriveThruRPG is the tabletop-RPG storefront.
	DriveThruRPG = Vendor{
		Name:         "DriveThruRPG",
		IDKey:        "drivethrurpg",
		SiteURL:      "https://www.drivethrurpg.com",
		APIURL:       "https://api.drivethrurpg.com/api/vBeta",
		SiteID:       10,
		CoverBaseURL: "https://d1vzi28wh99zvq.cloudfront.net/images/",
	}

	// WarGameVault is the wargaming storefront on the same platform.
	WarGameVault = Vendor{
		Name:         "WarGameVault",
		IDKey:        "wargamevault",
		SiteURL:      "https://www.wargamevault.com",
		APIURL:       "https://api.wargamevault.com/api/vBeta",
		SiteID:       13,
		CoverBaseURL: "https://d1vzi28wh99zvq.cloudfront.net/images/",
	}
)

// VendorByKey returns the vendor whose IDKey matches key.
func VendorByKey(key string) (Vendor, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case DriveThruRPG.IDKey:
		return DriveThruRPG, nil
	case WarGameVault.IDKey:
		return WarGameVault, nil
	}
	return Vendor{}, fmt.Errorf("unknown vendor %q (expected %q or %q)", key, DriveThruRPG.IDKey, WarGameVault.IDKey)
}

// ProductPageURL returns the canonical public storefront page for a product.
func (v Vendor) ProductPageURL(id string) string {
	return fmt.Sprintf("%s/product/%s", v.SiteURL, id)
}

// DetailURL returns the API detail endpoint for a product.
func (v Vendor) DetailURL(id string) string {
	return fmt.Sprintf("%s/products/%s", v.APIURL, id)
}

// CoverURL joins the CDN prefix with a product's relative image path.
func (v Vendor) CoverURL(image string) string {
	return v.CoverBaseURL + image
}

var productIDPattern = regexp.MustCompile(`/products/(\d+)`)

// ExtractProductID pulls the numeric product identifier out of a detail URL
// or URL path. The second return value reports whether an ID was found.
func ExtractProductID(url string) (string, bool) {
	m := productIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
