package services

import (
	"crypto/subtle"
	"errors"
	"mendel/api/models"
	e "mendel/api/models/dtos/errors"
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

type (
	AuthzService struct {
		isEnabled   bool
		accessToken string
	}
)

func NewAuthzService(cfg *models.Config) *AuthzService {
	return &AuthzService{
		isEnabled:   cfg.AuthX.IsAuthorizationEnabled,
		accessToken: cfg.AuthX.AccessToken,
	}
}

func (a *AuthzService) IsEnabled() bool {
	return a.isEnabled
}

func (a *AuthzService) EnsureAccessPermitted(authnTokenString string) error {
	// an enabled gate with no configured token admits nobody
	if a.accessToken == "" {
		return errors.New("access denied")
	}
	if subtle.ConstantTimeCompare([]byte(authnTokenString), []byte(a.accessToken)) != 1 {
		return errors.New("access denied")
	}
	return nil
}

func (a *AuthzService) FetchAuthorizationHeader(headers http.Header) (string, error) {
	// return error if the Authorization header is missing
	if headers.Get("Authorization") == "" {
		return "", errors.New("missing 'Authorization' HTTP header")
	}

	authnToken := headers.Get("Authorization")
	// remove "Bearer " if need be
	if strings.HasPrefix(authnToken, "Bearer ") {
		authnToken = strings.TrimSpace(strings.TrimPrefix(authnToken, "Bearer "))
	}

	return authnToken, nil
}

func (a *AuthzService) MandateAuthorizationTokensMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if a.IsEnabled() {
			// check request headers
			authnToken, missingHeaderErr := a.FetchAuthorizationHeader(c.Request().Header)
			if missingHeaderErr != nil {
				return c.JSON(http.StatusForbidden, e.CreateSimpleForbidden(missingHeaderErr.Error()))
			}

			// check token
			accessError := a.EnsureAccessPermitted(authnToken)
			if accessError != nil {
				return c.JSON(http.StatusUnauthorized, e.CreateSimpleUnauthorized(accessError.Error()))
			}
		}

		// access granted!
		return next(c)
	}
}
