package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// AuthMiddleware requires a valid token on the request, from either the
// Authorization header or the jwt_token cookie, and stores the claims in
// the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := ""
	if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		tokenString = strings.TrimPrefix(h, "Bearer ")
	} else {
		tokenString = c.Cookies("jwt_token")
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
	}

	claims, err := ValidateToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}
	c.Locals("claims", claims)
	return c.Next()
}

// RequireManagement restricts a route to management roles.
func RequireManagement(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*Claims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
	}
	switch claims.Role {
	case models.RolePrincipal, models.RoleDeputy, models.RoleOffice, models.RoleCoordinator:
		return c.Next()
	}
	return c.Status(403).JSON(fiber.Map{"error": "Management role required"})
}

// CurrentStaffID reads the authenticated staff ID from the request.
func CurrentStaffID(c *fiber.Ctx) string {
	if claims, ok := c.Locals("claims").(*Claims); ok {
		return claims.StaffID
	}
	return ""
}
