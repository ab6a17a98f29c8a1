package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/token"
)

type ConfirmationHandler struct {
	grants token.GrantIssuer
}

func NewConfirmationHandler(grants token.GrantIssuer) *ConfirmationHandler {
	return &ConfirmationHandler{grants: grants}
}

// Verify gates the thank-you page. The cookie and the client-held token must
// both be present, byte-equal, signature-valid and unexpired; requiring the
// pair stops a copied link or a copied cookie from working on its own.
func (h *ConfirmationHandler) Verify(c *gin.Context) {
	cookieToken, err := c.Cookie(consts.ThankYouCookie)
	queryToken := c.Query("token")

	if err != nil || cookieToken == "" || queryToken == "" || cookieToken != queryToken {
		c.JSON(http.StatusUnauthorized, models.ConfirmationResponse{
			Valid: false,
			Error: consts.ErrorAccessTokenInvalid.Message,
		})
		return
	}

	expiresAt, err := h.grants.Verify(cookieToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ConfirmationResponse{
			Valid: false,
			Error: consts.ErrorAccessTokenInvalid.Message,
		})
		return
	}

	c.JSON(http.StatusOK, models.ConfirmationResponse{
		Valid:     true,
		ExpiresAt: expiresAt.UnixMilli(),
	})
}
