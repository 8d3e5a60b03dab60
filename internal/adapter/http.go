package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpCollection[P any] struct {
	client      *utils.HTTPClient
	collection  string
	invalidator SessionInvalidator

	logger *logger.Logger
}

// NewHTTPCollection constructs an HTTP/JSON implementation of
// [RemoteCollection] for collection. invalidator may be nil.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCollection[P any](adapterCfg config.ClientAdapter, collection string, invalidator SessionInvalidator, logger *logger.Logger) (RemoteCollection[P], error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCollection[P]{
		client:      client,
		collection:  strings.Trim(collection, "/"),
		invalidator: invalidator,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCollection[P]) Name() string {
	return h.collection
}

// List implements [RemoteCollection] with GET /{collection}?ownerId={id}.
func (h *httpCollection[P]) List(ctx context.Context, session models.Session) ([]models.RemoteRecord[P], error) {
	req, err := h.authedRequest(ctx, session)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("ownerId", strconv.FormatInt(session.OwnerID, 10)).
		Get("/" + h.collection)
	if err != nil {
		return nil, mapTransportError("list request", err)
	}
	if err = h.checkResponse(ctx, session, resp); err != nil {
		return nil, err
	}

	records := make([]models.RemoteRecord[P], 0)
	if len(resp.Body()) == 0 {
		return records, nil
	}
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("%w: decode list response: %w", ErrInvalidResponse, err)
	}

	return records, nil
}

// Create implements [RemoteCollection] with POST /{collection}.
func (h *httpCollection[P]) Create(ctx context.Context, session models.Session, payload P) (string, error) {
	req, err := h.authedRequest(ctx, session)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateRequest[P]{OwnerID: session.OwnerID, Payload: payload}).
		Post("/" + h.collection)
	if err != nil {
		return "", mapTransportError("create request", err)
	}
	if err = h.checkResponse(ctx, session, resp); err != nil {
		return "", err
	}

	var created models.CreateResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("%w: decode create response: %w", ErrInvalidResponse, err)
	}
	if created.ServerID == "" {
		return "", ErrMissingServerID
	}

	return created.ServerID, nil
}

// Update implements [RemoteCollection] with PUT /{collection}/{serverId}.
func (h *httpCollection[P]) Update(ctx context.Context, session models.Session, serverID string, payload P) error {
	req, err := h.authedRequest(ctx, session)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("serverId", serverID).
		SetBody(payload).
		Put("/" + h.collection + "/{serverId}")
	if err != nil {
		return mapTransportError("update request", err)
	}

	return h.checkResponse(ctx, session, resp)
}

// Delete implements [RemoteCollection] with DELETE /{collection}/{serverId}.
func (h *httpCollection[P]) Delete(ctx context.Context, session models.Session, serverID string) error {
	req, err := h.authedRequest(ctx, session)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("serverId", serverID).
		Delete("/" + h.collection + "/{serverId}")
	if err != nil {
		return mapTransportError("delete request", err)
	}

	return h.checkResponse(ctx, session, resp)
}

func (h *httpCollection[P]) authedRequest(ctx context.Context, session models.Session) (*resty.Request, error) {
	token := strings.TrimSpace(session.Token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty session token", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// checkResponse maps non-2xx statuses to errors and invalidates the session
// the request was sent with on 401.
func (h *httpCollection[P]) checkResponse(ctx context.Context, session models.Session, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Str("func", "httpCollection.checkResponse").
		Str("collection", h.collection).
		Str("method", resp.Request.Method).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Msg("remote call failed")

	if errors.Is(err, ErrUnauthorized) && h.invalidator != nil {
		if invErr := h.invalidator.InvalidateToken(ctx, session.Token); invErr != nil {
			h.logger.Err(invErr).
				Str("func", "httpCollection.checkResponse").
				Msg("failed to invalidate session")
		}
	}

	return err
}
