package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// Category is a question category as listed by the API.
type Category struct {
	ID   int
	Name string
}

func (c Category) ParameterName() string { return "category" }

func (c Category) ParameterValue() string { return strconv.Itoa(c.ID) }

func (c Category) String() string {
	return fmt.Sprintf("C:%s(%d)", c.Name, c.ID)
}

// Categories is a refreshable id/name lookup table backed by the category
// endpoint. It is created empty; call Refresh to populate it. Lookups on an
// unpopulated table simply report absence.
type Categories struct {
	BaseURL string
	Http    *http.Client

	mu   sync.RWMutex
	list []Category
}

// NewCategories creates an empty category table for the given base URL.
// A nil httpClient falls back to http.DefaultClient.
func NewCategories(baseURL string, httpClient *http.Client) *Categories {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Categories{BaseURL: baseURL, Http: httpClient}
}

// Refresh fetches the category list and replaces the table contents.
func (c *Categories) Refresh(ctx context.Context) error {
	endpoint := normalizedBaseURL(c.BaseURL) + kCategoryPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create category request: %w", err)
	}
	resp, err := c.Http.Do(req)
	if err != nil {
		return fmt.Errorf("category request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, kMaxErrorBodyBytes))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("category endpoint: status %d: %s", resp.StatusCode, msg)
	}

	var body struct {
		TriviaCategories []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"trivia_categories"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, kMaxBodyBytes)).Decode(&body); err != nil {
		return fmt.Errorf("decode category response: %w", err)
	}

	list := make([]Category, 0, len(body.TriviaCategories))
	for _, tc := range body.TriviaCategories {
		list = append(list, Category{ID: tc.ID, Name: tc.Name})
	}

	c.mu.Lock()
	c.list = list
	c.mu.Unlock()
	return nil
}

// All returns a copy of the current category list.
func (c *Categories) All() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Category, len(c.list))
	copy(out, c.list)
	return out
}

// ByID looks up a category by id; the second return reports presence.
func (c *Categories) ByID(id int) (Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.list {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ByName looks up a category by its exact name; the second return reports
// presence.
func (c *Categories) ByName(name string) (Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.list {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
