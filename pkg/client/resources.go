package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/minhquang4334/baby-tracker/pkg/model"
)

// ChildRequest is the create/update payload for the profile.
type ChildRequest struct {
	Name        string       `json:"name"`
	DateOfBirth string       `json:"date_of_birth"`
	Gender      model.Gender `json:"gender"`
	PhotoURL    string       `json:"photo_url,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// GetChild returns the profile, or nil when onboarding has not happened yet.
func (c *Client) GetChild(ctx context.Context) (*model.Child, error) {
	var child model.Child
	err := c.do(ctx, http.MethodGet, "/child", nil, &child)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if child.ID == "" {
		return nil, nil
	}
	return &child, nil
}

func (c *Client) CreateChild(ctx context.Context, req ChildRequest) (*model.Child, error) {
	var child model.Child
	if err := c.do(ctx, http.MethodPost, "/child", req, &child); err != nil {
		return nil, err
	}
	return &child, nil
}

func (c *Client) UpdateChild(ctx context.Context, req ChildRequest) (*model.Child, error) {
	var child model.Child
	if err := c.do(ctx, http.MethodPut, "/child", req, &child); err != nil {
		return nil, err
	}
	return &child, nil
}

// SleepRequest creates or updates a sleep log. Empty fields are omitted so the
// server fills defaults (start_time = now) or leaves values untouched.
type SleepRequest struct {
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CreateSleepResult carries the new log plus the stopped-feeding side channel
// when starting sleep force-stopped an active feed.
type CreateSleepResult struct {
	model.SleepLog
	StoppedFeeding *model.StoppedFeeding `json:"stopped_feeding,omitempty"`
}

func (c *Client) ListSleep(ctx context.Context, date string) ([]*model.SleepLog, error) {
	var logs []*model.SleepLog
	if err := c.do(ctx, http.MethodGet, dateQuery("/sleep", date), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateSleep(ctx context.Context, req SleepRequest) (*CreateSleepResult, error) {
	var res CreateSleepResult
	if err := c.do(ctx, http.MethodPost, "/sleep", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetActiveSleep returns the in-progress sleep, or nil when none is active.
func (c *Client) GetActiveSleep(ctx context.Context) (*model.SleepLog, error) {
	var log model.SleepLog
	if err := c.do(ctx, http.MethodGet, "/sleep/active", nil, &log); err != nil {
		return nil, err
	}
	if log.ID == "" {
		return nil, nil
	}
	return &log, nil
}

func (c *Client) UpdateSleep(ctx context.Context, id string, req SleepRequest) (*model.SleepLog, error) {
	var log model.SleepLog
	if err := c.do(ctx, http.MethodPut, "/sleep/"+url.PathEscape(id), req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) DeleteSleep(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sleep/"+url.PathEscape(id), nil, nil)
}

// FeedingRequest creates or updates a feeding log. QuantityML is only sent for
// bottle feeds.
type FeedingRequest struct {
	FeedType   model.FeedType `json:"feed_type,omitempty"`
	StartTime  string         `json:"start_time,omitempty"`
	EndTime    string         `json:"end_time,omitempty"`
	QuantityML *int           `json:"quantity_ml,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// CreateFeedingResult carries the new log plus the stopped-sleep side channel
// when starting a feed force-stopped an active sleep.
type CreateFeedingResult struct {
	model.FeedingLog
	StoppedSleep *model.StoppedSleep `json:"stopped_sleep,omitempty"`
}

func (c *Client) ListFeeding(ctx context.Context, date string) ([]*model.FeedingLog, error) {
	var logs []*model.FeedingLog
	if err := c.do(ctx, http.MethodGet, dateQuery("/feeding", date), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateFeeding(ctx context.Context, req FeedingRequest) (*CreateFeedingResult, error) {
	var res CreateFeedingResult
	if err := c.do(ctx, http.MethodPost, "/feeding", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetActiveFeeding returns the in-progress feed, or nil when none is active.
func (c *Client) GetActiveFeeding(ctx context.Context) (*model.FeedingLog, error) {
	var log model.FeedingLog
	if err := c.do(ctx, http.MethodGet, "/feeding/active", nil, &log); err != nil {
		return nil, err
	}
	if log.ID == "" {
		return nil, nil
	}
	return &log, nil
}

func (c *Client) UpdateFeeding(ctx context.Context, id string, req FeedingRequest) (*model.FeedingLog, error) {
	var log model.FeedingLog
	if err := c.do(ctx, http.MethodPut, "/feeding/"+url.PathEscape(id), req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) DeleteFeeding(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/feeding/"+url.PathEscape(id), nil, nil)
}

// DiaperRequest creates or updates a diaper log.
type DiaperRequest struct {
	DiaperType model.DiaperType `json:"diaper_type,omitempty"`
	ChangedAt  string           `json:"changed_at,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

func (c *Client) ListDiaper(ctx context.Context, date string) ([]*model.DiaperLog, error) {
	var logs []*model.DiaperLog
	if err := c.do(ctx, http.MethodGet, dateQuery("/diaper", date), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateDiaper(ctx context.Context, req DiaperRequest) (*model.DiaperLog, error) {
	var log model.DiaperLog
	if err := c.do(ctx, http.MethodPost, "/diaper", req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) UpdateDiaper(ctx context.Context, id string, req DiaperRequest) (*model.DiaperLog, error) {
	var log model.DiaperLog
	if err := c.do(ctx, http.MethodPut, "/diaper/"+url.PathEscape(id), req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) DeleteDiaper(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/diaper/"+url.PathEscape(id), nil, nil)
}

// GrowthRequest creates or updates a growth measurement.
type GrowthRequest struct {
	MeasuredOn          string `json:"measured_on"`
	WeightGrams         *int   `json:"weight_grams,omitempty"`
	LengthMM            *int   `json:"length_mm,omitempty"`
	HeadCircumferenceMM *int   `json:"head_circumference_mm,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// Validate applies the measurement rule before anything is sent.
func (r GrowthRequest) Validate() error {
	g := model.GrowthLog{
		WeightGrams:         r.WeightGrams,
		LengthMM:            r.LengthMM,
		HeadCircumferenceMM: r.HeadCircumferenceMM,
	}
	return g.Validate()
}

func (c *Client) ListGrowth(ctx context.Context) ([]*model.GrowthLog, error) {
	var logs []*model.GrowthLog
	if err := c.do(ctx, http.MethodGet, "/growth", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) CreateGrowth(ctx context.Context, req GrowthRequest) (*model.GrowthLog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var log model.GrowthLog
	if err := c.do(ctx, http.MethodPost, "/growth", req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) UpdateGrowth(ctx context.Context, id string, req GrowthRequest) (*model.GrowthLog, error) {
	var log model.GrowthLog
	if err := c.do(ctx, http.MethodPut, "/growth/"+url.PathEscape(id), req, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (c *Client) DeleteGrowth(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/growth/"+url.PathEscape(id), nil, nil)
}

// GetSummary returns the aggregate for one day (today when date is empty).
func (c *Client) GetSummary(ctx context.Context, date string) (*model.DaySummary, error) {
	var summary model.DaySummary
	if err := c.do(ctx, http.MethodGet, dateQuery("/summary", date), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetAnalytics returns per-day stat rows for the inclusive date range.
func (c *Client) GetAnalytics(ctx context.Context, from, to string) ([]model.DayStats, error) {
	path := "/analytics?from=" + url.QueryEscape(from) + "&to=" + url.QueryEscape(to)
	var rows []model.DayStats
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
