package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pivvot-Consulting/billing-form/internal/adapter/http/handlers"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase"
	"github.com/Pivvot-Consulting/billing-form/pkg"
)

var errUnauthorized = pkg.NewDomainErrorSimple("AUTH_ERROR", "Authentication required", http.StatusUnauthorized)

// authRequired resolves the bearer token to an operator session and
// stores the operator on the request context. Aborts with 401 when the
// token is absent, unknown or expired.
func authRequired(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		session, err := auth.CurrentSession(c.Request.Context(), token)
		if err != nil {
			appErr := mapSessionError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		handlers.SetOperator(c, session.Operator)
		c.Next()
	}
}

func mapSessionError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrSessionNotFound) {
		return errUnauthorized
	}
	return pkg.NewDomainError("UNKNOWN_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
