package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/log_messages"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
)

// LeadProsperAPI interface (for mocking & testing)
type LeadProsperAPI interface {
	SubmitLead(ctx context.Context, apiURL string, payload map[string]string) (*models.LeadProsperResponse, error)
}

type LeadProsperClient struct {
	httpClient   *http.Client
	decodePolicy consts.DecodeFailurePolicy
}

func NewLeadProsperClient(timeout time.Duration) *LeadProsperClient {
	return &LeadProsperClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		decodePolicy: consts.OnDecodeFailureTreatAsAccepted,
	}
}

// SubmitLead performs the single forwarding POST. The response body is read
// as raw text first and then JSON-decoded; per the decodePolicy, a body that
// is not JSON yields a synthetic ACCEPTED status rather than an error. The
// partner's HTTP status code is not consulted, only the decoded body.
func (c *LeadProsperClient) SubmitLead(ctx context.Context, apiURL string, payload map[string]string) (*models.LeadProsperResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal lead payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build lead request: %w", err)
	}
	httpReq.Header.Set("Content-Type", consts.ContentTypeJSON)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorForwardingLead, err, zap.String("url", apiURL))
		return nil, fmt.Errorf("%s: %w", consts.ErrorDownstreamRequestFailed.Message, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorForwardingLead, err)
		return nil, fmt.Errorf("read lead response: %w", err)
	}

	var lpResp models.LeadProsperResponse
	if err := json.Unmarshal(rawBody, &lpResp); err != nil {
		if c.decodePolicy == consts.OnDecodeFailureTreatAsAccepted {
			logger.CtxWarn(ctx, log_messages.ErrorPartnerBodyNotJSON,
				zap.Int("status_code", resp.StatusCode),
				zap.Int("body_bytes", len(rawBody)),
			)
			return &models.LeadProsperResponse{Status: consts.StatusAccepted}, nil
		}
		return nil, fmt.Errorf("decode lead response: %w", err)
	}

	logger.CtxInfo(ctx, log_messages.LeadForwarded,
		zap.String("status", lpResp.Status),
		zap.Int("status_code", resp.StatusCode),
	)
	return &lpResp, nil
}
