package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dashly/sales-analytics-api/internal/domain"
	"github.com/dashly/sales-analytics-api/pkg/log"
)

type contextKey string

// ContextKeyPlan stores the caller's plan in the request context.
const ContextKeyPlan contextKey = "plan"

// Plan is the caller's subscription tier, carried as a JWT claim. There is
// no user store: the token is the whole entitlement.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// PlanClaims is the JWT claim set issued to API callers.
type PlanClaims struct {
	Plan string `json:"plan"`
	jwt.RegisteredClaims
}

// Entitlement resolves the caller's plan from the Authorization header and
// stores it in the context. A missing or invalid token downgrades to the
// free plan rather than rejecting the request: plan checks happen where the
// gated feature is requested. With the gate disabled every caller is PRO.
func Entitlement(secret string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			plan := PlanPro

			if enabled {
				plan = planFromToken(r, secret)
			}

			ctx := context.WithValue(r.Context(), ContextKeyPlan, plan)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func planFromToken(r *http.Request, secret string) Plan {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return PlanFree
	}

	claims := &PlanClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		log.L.WithError(err).Debug("entitlement: rejecting bearer token, downgrading to free plan")
		return PlanFree
	}

	if Plan(claims.Plan) == PlanPro {
		return PlanPro
	}
	return PlanFree
}

// PlanFromContext returns the caller's plan, defaulting to free.
func PlanFromContext(ctx context.Context) Plan {
	if plan, ok := ctx.Value(ContextKeyPlan).(Plan); ok {
		return plan
	}
	return PlanFree
}

// IsPeriodAllowed reports whether the caller's plan may use the period
// keyword. "month" and "all" are PRO features.
func IsPeriodAllowed(ctx context.Context, period string) bool {
	if period != domain.PeriodMonth && period != domain.PeriodAll {
		return true
	}
	return PlanFromContext(ctx) == PlanPro
}
