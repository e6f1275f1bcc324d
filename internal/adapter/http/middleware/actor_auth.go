package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ActorKey is the gin context key the authenticated actor is stored under.
const ActorKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

type actorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// ActorAuth validates the Bearer token and stores the resulting actor in the
// request context. Tokens are HS256 with the subject as the user id and a
// role claim of customer, provider or admin.
//
// Without AUTH_JWT_SECRET the middleware rejects every request instead of
// verifying signatures against an empty key.
func ActorAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("AUTH_JWT_SECRET"))
	if len(secret) == 0 {
		log.Printf("[auth][middleware] AUTH_JWT_SECRET is not set, rejecting all authenticated routes")
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		}
	}

	return func(c *gin.Context) {
		actor, err := actorFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ActorKey, actor)
		c.Next()
	}
}

func actorFromHeader(header string, secret []byte) (entities.Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return entities.Actor{}, errors.New("missing bearer token")
	}

	tok, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &actorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return entities.Actor{}, err
	}
	claims, ok := tok.Claims.(*actorClaims)
	if !ok || !tok.Valid {
		return entities.Actor{}, errors.New("invalid token")
	}

	role := entities.ActorRole(claims.Role)
	switch role {
	case entities.ActorRoleCustomer, entities.ActorRoleProvider, entities.ActorRoleAdmin:
	default:
		return entities.Actor{}, errors.New("unknown role claim")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return entities.Actor{}, errors.New("missing subject claim")
	}

	return entities.Actor{Role: role, ID: claims.Subject}, nil
}

// ActorFrom extracts the actor placed by ActorAuth. The second return is
// false when the middleware did not run for this route.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
