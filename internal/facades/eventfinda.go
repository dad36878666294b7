package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

// DefaultEventfindaBaseURL is the public Eventfinda API host.
const DefaultEventfindaBaseURL = "https://api.eventfinda.com.au"

const eventFields = "id,url,name,summary,description,images,datetime_start,datetime_end"

var (
	// ErrUpstreamStatus is returned when Eventfinda answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("eventfinda: unexpected status")
	// ErrLocationNotFound is returned when a location query has no match.
	ErrLocationNotFound = errors.New("eventfinda: location not found")
	// ErrMissingCredentials is returned when no API username is configured.
	ErrMissingCredentials = errors.New("eventfinda: username is not configured")
)

// HTTPDoer sends HTTP requests; *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// EventfindaHTTPFacade reads the Eventfinda REST API with Basic auth.
type EventfindaHTTPFacade struct {
	client   HTTPDoer
	baseURL  string
	username string
	password string
}

// NewEventfindaHTTPFacade creates a facade; an empty baseURL selects DefaultEventfindaBaseURL.
func NewEventfindaHTTPFacade(client HTTPDoer, baseURL, username, password string) *EventfindaHTTPFacade {
	if baseURL == "" {
		baseURL = DefaultEventfindaBaseURL
	}
	return &EventfindaHTTPFacade{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
}

// FindLocationID resolves the most popular location matching query.
func (f *EventfindaHTTPFacade) FindLocationID(ctx context.Context, query string) (int64, error) {
	params := url.Values{
		"rows": {"1"},
		"q":    {query},
		"sort": {"popularity"},
	}

	var body struct {
		Locations []struct {
			ID int64 `json:"id"`
		} `json:"locations"`
	}
	if err := f.get(ctx, "/v2/locations.json", params, &body); err != nil {
		logger.Log.Errorw("failed to resolve eventfinda location", "query", query, "error", err)
		return 0, err
	}

	if len(body.Locations) == 0 || body.Locations[0].ID == 0 {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
	}
	return body.Locations[0].ID, nil
}

// ListEvents returns one page of events at locationID ordered by date, sessions included.
func (f *EventfindaHTTPFacade) ListEvents(ctx context.Context, locationID int64, q models.EventfindaQuery) (models.EventfindaEvents, error) {
	params := url.Values{
		"location": {strconv.FormatInt(locationID, 10)},
		"page":     {strconv.Itoa(q.Page)},
		"rows":     {strconv.Itoa(q.Rows)},
		"order":    {"date"},
		"fields":   {eventFields},
		"include":  {"sessions"},
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	var body struct {
		Events models.EventfindaEvents `json:"events"`
	}
	if err := f.get(ctx, "/v2/events.json", params, &body); err != nil {
		logger.Log.Errorw("failed to fetch eventfinda events", "location", locationID, "error", err)
		return nil, err
	}

	if body.Events == nil {
		body.Events = models.EventfindaEvents{}
	}
	return body.Events, nil
}

// ListCategories returns the Eventfinda category list.
func (f *EventfindaHTTPFacade) ListCategories(ctx context.Context) (models.EventfindaCategories, error) {
	var body struct {
		Categories models.EventfindaCategories `json:"categories"`
	}
	if err := f.get(ctx, "/v2/categories.json", url.Values{"rows": {"200"}}, &body); err != nil {
		logger.Log.Errorw("failed to fetch eventfinda categories", "error", err)
		return nil, err
	}

	if body.Categories == nil {
		body.Categories = models.EventfindaCategories{}
	}
	return body.Categories, nil
}

func (f *EventfindaHTTPFacade) get(ctx context.Context, path string, params url.Values, out any) error {
	if f.username == "" {
		return ErrMissingCredentials
	}

	endpoint := f.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(f.username, f.password)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	logger.Log.Infow("eventfinda request",
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
