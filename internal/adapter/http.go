package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/utils"
	"github.com/MKhiriev/go-cam-scan/models"
	"github.com/go-resty/resty/v2"
)

type httpDeviceAdapter struct {
	client  *utils.HTTPClient
	address string

	logger *logger.Logger
}

// NewHTTPDeviceAdapter constructs an HTTP/REST [DeviceAdapter] for the device
// at address. The address may omit the scheme, in which case http is
// assumed. Every request is bounded by adapterCfg.RequestTimeout.
func NewHTTPDeviceAdapter(address string, adapterCfg config.ClientAdapter, logger *logger.Logger) (DeviceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid device address %q: %w", address, err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpDeviceAdapter{
		client:  client,
		address: baseURL,
		logger:  logger.WithField("device", baseURL),
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

func (h *httpDeviceAdapter) Address() string {
	return h.address
}

// request builds a request bound to ctx that forwards the caller's trace id
// so device-side logs can be correlated with the client's.
func (h *httpDeviceAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

// DeviceInfo implements [DeviceAdapter] via GET /api/device.
func (h *httpDeviceAdapter) DeviceInfo(ctx context.Context) (models.DeviceInfo, error) {
	var info models.DeviceInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get("/api/device")
	if err != nil {
		return models.DeviceInfo{}, fmt.Errorf("device info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceInfo{}, err
	}

	return info, nil
}

// CommandCategories implements [DeviceAdapter] via GET /api/device/categories.
func (h *httpDeviceAdapter) CommandCategories(ctx context.Context) (models.CommandCategories, error) {
	var categories models.CommandCategories

	resp, err := h.request(ctx).
		SetResult(&categories).
		Get("/api/device/categories")
	if err != nil {
		return 0, fmt.Errorf("command categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return categories, nil
}

// StorageDevices implements [DeviceAdapter] via GET /api/storage.
func (h *httpDeviceAdapter) StorageDevices(ctx context.Context) ([]models.StorageInfo, error) {
	var storages []models.StorageInfo

	resp, err := h.request(ctx).
		SetResult(&storages).
		Get("/api/storage")
	if err != nil {
		return nil, fmt.Errorf("storage request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return storages, nil
}

// ListChildren implements [DeviceAdapter] via GET /api/fs/children.
func (h *httpDeviceAdapter) ListChildren(ctx context.Context, folderID string) ([]models.ItemInfo, error) {
	var children []models.ItemInfo

	resp, err := h.request(ctx).
		SetQueryParam("id", folderID).
		SetResult(&children).
		Get("/api/fs/children")
	if err != nil {
		return nil, fmt.Errorf("list children request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("folder_id", folderID).
		Int("children", len(children)).
		Msg("listed folder")

	return children, nil
}

// LoadMetadata implements [DeviceAdapter] via GET /api/fs/metadata.
func (h *httpDeviceAdapter) LoadMetadata(ctx context.Context, itemID string) (models.ItemInfo, error) {
	var item models.ItemInfo

	resp, err := h.request(ctx).
		SetQueryParam("id", itemID).
		SetResult(&item).
		Get("/api/fs/metadata")
	if err != nil {
		return models.ItemInfo{}, fmt.Errorf("metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemInfo{}, err
	}

	return item, nil
}

// FetchThumbnail implements [DeviceAdapter] via GET /api/fs/thumbnail. The
// body is returned as is.
func (h *httpDeviceAdapter) FetchThumbnail(ctx context.Context, itemID string) ([]byte, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "image/jpeg").
		SetQueryParam("id", itemID).
		Get("/api/fs/thumbnail")
	if err != nil {
		return nil, fmt.Errorf("thumbnail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
