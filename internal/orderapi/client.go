/*
Package orderapi implements a read-only client for the pizza chain's
public ordering API: store profiles and the coupon section of store menus.

The API returns loosely-typed documents with optional fields everywhere.
This client normalizes them into the explicit coupon.Coupon and
coupon.StoreInfo records at the boundary, defaulting anything malformed,
so the rest of the application never touches the wire shapes.
*/
package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

// DefaultBaseURL is the production ordering API endpoint.
const DefaultBaseURL = "https://order.dominos.com/power"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 * 1024 * 1024

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches store profiles and menu coupons from the ordering API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// New creates a Client against baseURL. An empty baseURL selects the
// production endpoint; a nil httpClient selects a default client with a
// 15-second timeout.
func New(baseURL string, httpClient HTTPClient) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// storeProfileDoc is the wire shape of a store profile, reduced to the
// fields this application uses.
type storeProfileDoc struct {
	StoreID             json.Number `json:"StoreID"`
	AddressDescription  string      `json:"AddressDescription"`
	Phone               string      `json:"Phone"`
	HoursDescription    string      `json:"HoursDescription"`
	IsOpen              bool        `json:"IsOpen"`
	AllowDeliveryOrders bool        `json:"AllowDeliveryOrders"`
	AllowCarryoutOrders bool        `json:"AllowCarryoutOrders"`
}

// StoreProfile fetches the profile of a store by id.
func (c *Client) StoreProfile(ctx context.Context, storeID string) (coupon.StoreInfo, error) {
	url := fmt.Sprintf("%s/store/%s/profile", c.baseURL, storeID)

	var doc storeProfileDoc
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return coupon.StoreInfo{}, fmt.Errorf("fetch store profile: %w", err)
	}

	info := coupon.StoreInfo{
		StoreID:          doc.StoreID.String(),
		Address:          strings.ReplaceAll(doc.AddressDescription, "\n", ", "),
		Phone:            doc.Phone,
		HoursDescription: doc.HoursDescription,
		IsOpen:           doc.IsOpen,
		AllowDelivery:    doc.AllowDeliveryOrders,
		AllowCarryout:    doc.AllowCarryoutOrders,
	}
	if info.StoreID == "" {
		info.StoreID = storeID
	}

	return info, nil
}

// couponDoc is the wire shape of one menu coupon.
type couponDoc struct {
	Code        string        `json:"Code"`
	Name        string        `json:"Name"`
	Description string        `json:"Description"`
	Price       string        `json:"Price"`
	VirtualCode string        `json:"VirtualCode"`
	Local       bool          `json:"Local"`
	Tags        couponTagsDoc `json:"Tags"`
}

// couponTagsDoc carries the coupon tags this application reads. The menu
// uses both a single service method and a list; either may appear.
type couponTagsDoc struct {
	Bundle              bool     `json:"Bundle"`
	ServiceMethod       string   `json:"ServiceMethod"`
	ValidServiceMethods []string `json:"ValidServiceMethods"`
	EffectiveOn         string   `json:"EffectiveOn"`
	ExpiresOn           string   `json:"ExpiresOn"`
}

// menuDoc is the slice of the menu document this client reads.
type menuDoc struct {
	Coupons map[string]couponDoc `json:"Coupons"`
}

// StoreCoupons fetches the coupons on a store's current menu, sorted by
// coupon id for stable output.
func (c *Client) StoreCoupons(ctx context.Context, storeID string) ([]coupon.Coupon, error) {
	url := fmt.Sprintf("%s/store/%s/menu?lang=en&structured=true", c.baseURL, storeID)

	var doc menuDoc
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch store menu: %w", err)
	}

	coupons := make([]coupon.Coupon, 0, len(doc.Coupons))
	for id, cd := range doc.Coupons {
		coupons = append(coupons, normalizeCoupon(id, cd))
	}

	sort.Slice(coupons, func(i, j int) bool { return coupons[i].ID < coupons[j].ID })
	return coupons, nil
}

// normalizeCoupon maps a wire coupon onto the boundary record, defaulting
// malformed fields rather than rejecting the coupon.
func normalizeCoupon(id string, doc couponDoc) coupon.Coupon {
	cp := coupon.Coupon{
		ID:             id,
		Code:           doc.Code,
		VirtualCode:    doc.VirtualCode,
		Name:           doc.Name,
		Description:    doc.Description,
		Price:          doc.Price,
		ExpirationDate: doc.Tags.ExpiresOn,
		Bundle:         doc.Tags.Bundle,
		Local:          doc.Local,
	}
	if cp.ID == "" {
		cp.ID = doc.Code
	}
	if cp.Name == "" {
		cp.Name = doc.Description
	}

	cp.ServiceMethod = serviceMethod(doc.Tags)

	return cp
}

// serviceMethod resolves the single restricting service method, if any.
// A coupon valid for several methods is unrestricted.
func serviceMethod(tags couponTagsDoc) string {
	if tags.ServiceMethod != "" {
		return canonicalMethod(tags.ServiceMethod)
	}
	if len(tags.ValidServiceMethods) == 1 {
		return canonicalMethod(tags.ValidServiceMethods[0])
	}
	return ""
}

func canonicalMethod(m string) string {
	switch strings.ToLower(m) {
	case "delivery":
		return "Delivery"
	case "carryout":
		return "Carryout"
	default:
		return m
	}
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "deal-hub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
