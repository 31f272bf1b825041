package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "hotel-ops-backend/lib/utils/auth-utils"
	"hotel-ops-backend/models"
	apimodels "hotel-ops-backend/models/api"
)

func GetUserProperty(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if property, exist := claims["property"]; exist {
		return property.(string)
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func PropertyAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsPropertyAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available"))
		}
		return ctx.Next()
	}
}
