// Package hh is a client for the hh.ru-style public vacancy API that feeds
// the store. Only the two read endpoints the importer needs are covered.
package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"vacstore/internal/domain/feed"
)

const vacanciesPerPage = 100

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: trimmed, httpClient: httpClient}
}

type vacanciesPage struct {
	Items []feed.Vacancy `json:"items"`
	Pages int            `json:"pages"`
	Page  int            `json:"page"`
}

// Employer fetches a single employer record.
func (c *Client) Employer(ctx context.Context, id int64) (feed.Employer, error) {
	var employer feed.Employer
	endpoint := fmt.Sprintf("%s/employers/%d", c.baseURL, id)
	if err := c.getJSON(ctx, endpoint, &employer); err != nil {
		return feed.Employer{}, fmt.Errorf("fetch employer %d: %w", id, err)
	}
	return employer, nil
}

// EmployerVacancies fetches every vacancy page for the employer and
// returns the concatenated items.
func (c *Client) EmployerVacancies(ctx context.Context, id int64) ([]feed.Vacancy, error) {
	var vacancies []feed.Vacancy
	for page := 0; ; page++ {
		params := url.Values{}
		params.Set("employer_id", strconv.FormatInt(id, 10))
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(vacanciesPerPage))
		endpoint := c.baseURL + "/vacancies?" + params.Encode()

		var parsed vacanciesPage
		if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
			return nil, fmt.Errorf("fetch vacancies for employer %d page %d: %w", id, page, err)
		}
		vacancies = append(vacancies, parsed.Items...)
		if page+1 >= parsed.Pages {
			break
		}
	}
	return vacancies, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
