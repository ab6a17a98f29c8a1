package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/config"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/downstream"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/log_messages"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/schema"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/token"
)

// CredentialResolver resolves the partner credential 4-tuple for an ordered
// source chain. Indirected for testing.
type CredentialResolver func(sources []string) (models.LeadCredentials, error)

// SubmitResult is the classified outcome of one submission. Granted is true
// iff the partner status is one of the three recognized tokens.
type SubmitResult struct {
	PartnerStatus string
	Granted       bool
	Grant         token.AccessGrant
}

// LeadService runs the lead pipeline: validate, resolve credentials, map to
// the partner schema, forward once, classify. Strictly linear per request;
// no state survives the call.
type LeadService struct {
	resolveCredentials CredentialResolver
	partner            downstream.LeadProsperAPI
	grants             token.GrantIssuer
	now                func() time.Time
}

func NewLeadService(partner downstream.LeadProsperAPI, grants token.GrantIssuer) *LeadService {
	return &LeadService{
		resolveCredentials: config.ResolveLeadCredentials,
		partner:            partner,
		grants:             grants,
		now:                time.Now,
	}
}

// Submit processes one submission against the product schema. The zip is
// validated first and alone; a submission is either fully valid or rejected
// before any partner call. Error types returned: *models.ValidationError,
// *models.ConfigurationError, or a wrapped transport error.
func (s *LeadService) Submit(ctx context.Context, product schema.ProductSchema, sub models.Submission, zip string) (*SubmitResult, error) {
	if err := schema.ValidateZip(zip); err != nil {
		logger.CtxInfo(ctx, log_messages.LeadValidationFailed,
			zap.String("product", product.Product),
			zap.String("reason", "addressZip"),
		)
		return nil, err
	}

	if err := product.Validate(sub); err != nil {
		if vErr, ok := err.(*models.ValidationError); ok {
			logger.CtxInfo(ctx, log_messages.LeadValidationFailed,
				zap.String("product", product.Product),
				zap.Strings("missing_fields", vErr.MissingFields),
			)
		}
		return nil, err
	}

	creds, err := s.resolveCredentials(product.CredentialSources)
	if err != nil {
		if cfgErr, ok := err.(*models.ConfigurationError); ok {
			logger.CtxError(ctx, log_messages.ErrorResolvingCredentials, err,
				zap.String("product", product.Product),
				zap.Strings("missing_vars", cfgErr.MissingVars),
			)
		}
		return nil, err
	}

	payload := product.BuildPartnerPayload(sub, zip, creds)

	resp, err := s.partner.SubmitLead(ctx, creds.APIURL, payload)
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case consts.StatusAccepted, consts.StatusDuplicated, consts.StatusError:
		grant, err := s.grants.Issue(s.now())
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorIssuingAccessGrant, err)
			return nil, err
		}
		logger.CtxInfo(ctx, log_messages.LeadRecorded,
			zap.String("product", product.Product),
			zap.String("partner_status", resp.Status),
		)
		return &SubmitResult{PartnerStatus: resp.Status, Granted: true, Grant: grant}, nil
	}

	logger.CtxWarn(ctx, log_messages.ErrorLeadRejectedByPartner,
		zap.String("product", product.Product),
		zap.String("partner_status", resp.Status),
	)
	return &SubmitResult{PartnerStatus: resp.Status}, nil
}
