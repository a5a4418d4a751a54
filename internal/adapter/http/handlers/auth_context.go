package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
)

const (
	operatorContextKey   = "operator"
	operatorIDContextKey = "operator_id"
)

// SetOperator stores the authenticated operator on the request context.
// Called by the auth middleware only.
func SetOperator(c *gin.Context, operator entities.Operator) {
	c.Set(operatorContextKey, operator)
	c.Set(operatorIDContextKey, operator.ID)
}

// OperatorID returns the authenticated operator's id, or "" on
// unauthenticated routes.
func OperatorID(c *gin.Context) string {
	return c.GetString(operatorIDContextKey)
}

// Operator returns the full authenticated operator.
func Operator(c *gin.Context) entities.Operator {
	v, ok := c.Get(operatorContextKey)
	if !ok {
		return entities.Operator{}
	}
	operator, _ := v.(entities.Operator)
	return operator
}
