package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/common"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/log_messages"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/schema"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/service"
)

// LeadSubmitter interface (for mocking & testing)
type LeadSubmitter interface {
	Submit(ctx context.Context, product schema.ProductSchema, sub models.Submission, zip string) (*service.SubmitResult, error)
}

type LeadHandler struct {
	service       LeadSubmitter
	secureCookies bool
}

func NewLeadHandler(svc LeadSubmitter, secureCookies bool) *LeadHandler {
	return &LeadHandler{service: svc, secureCookies: secureCookies}
}

func (h *LeadHandler) SubmitRefinance(c *gin.Context) {
	h.submit(c, schema.Refinance)
}

func (h *LeadHandler) SubmitPurchase(c *gin.Context) {
	h.submit(c, schema.Purchase)
}

// submit is the one generic endpoint body; the two routes differ only by the
// product schema handed in.
func (h *LeadHandler) submit(c *gin.Context, product schema.ProductSchema) {
	ctx := c.Request.Context()

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	var sub models.Submission
	if err := dec.Decode(&sub); err != nil {
		// Malformed bodies are not distinguished from any other unexpected
		// failure; they surface as the generic internal error.
		logger.CtxError(ctx, log_messages.ErrorDecodingRequestBody, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": consts.ErrorInternalServer.Message})
		return
	}

	// URL parameter wins over the body field.
	zip := strings.TrimSpace(c.Query("zip_code"))
	if zip == "" {
		zip = common.TrimmedString(sub["addressZip"])
	}

	result, err := h.service.Submit(ctx, product, sub, zip)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if !result.Granted {
		c.JSON(http.StatusBadRequest, models.LeadErrorResponse{
			Success:           false,
			Error:             consts.ErrorLeadSubmissionFailed.Message,
			LeadProsperStatus: result.PartnerStatus,
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		consts.ThankYouCookie,
		result.Grant.Token,
		int(consts.AccessGrantTTL.Seconds()),
		"/",
		"",
		h.secureCookies,
		true,
	)
	c.JSON(http.StatusOK, models.LeadSuccessResponse{
		Success:           true,
		RedirectURL:       consts.ThankYouRedirectURL,
		LeadProsperStatus: result.PartnerStatus,
		AccessToken:       result.Grant.Token,
		ExpiresAt:         result.Grant.ExpiresAtMillis(),
	})
}

func (h *LeadHandler) writeError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, models.LeadErrorResponse{
			Success:       false,
			Error:         vErr.Message,
			MissingFields: vErr.MissingFields,
		})
		return
	}

	var cfgErr *models.ConfigurationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusInternalServerError, models.LeadErrorResponse{
			Success: false,
			Error:   consts.ErrorMissingCredentials.Message,
			Details: "Missing environment variables: " + strings.Join(cfgErr.MissingVars, ", "),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": consts.ErrorInternalServer.Message})
}
