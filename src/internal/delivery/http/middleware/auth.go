package middleware

import (
	"encoding/json"
	"strings"

	"mission-service/src/pkg/token"
	"mission-service/src/pkg/utils"
	httpError "mission-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// VerifyBearer extracts the caller identity from the Authorization bearer
// token. Signature verification happens upstream at the gateway, so the token
// is only decoded here. Requests without a token may still identify themselves
// through the X-User-ID header.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorization := ctx.Get("Authorization")
		if authorization == "" {
			if userID := ctx.Get("X-User-ID"); userID != "" {
				ctx.Locals("auth", &token.Metadata{UserID: userID})
				return ctx.Next()
			}
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing authorization"
			return utils.ResponseError(errObj, ctx)
		}

		raw := strings.TrimPrefix(authorization, "Bearer ")
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid token"
			return utils.ResponseError(errObj, ctx)
		}

		payload, err := json.Marshal(claims)
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid token claims"
			return utils.ResponseError(errObj, ctx)
		}

		claim := new(token.Claim)
		if err := json.Unmarshal(payload, claim); err != nil || claim.Metadata.UserID == "" {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid token claims"
			return utils.ResponseError(errObj, ctx)
		}

		if issuer := config.GetString("jwt.issuer"); issuer != "" && claim.Iss != issuer {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "unknown token issuer"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals("auth", &claim.Metadata)
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	return ctx.Locals("auth").(*token.Metadata)
}
