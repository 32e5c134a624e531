package helper

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

type UserToken struct {
	UserId string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// GenerateJWTToken - Generate JWT Token
func GenerateJWTToken(claims jwt.MapClaims, expiryDays int) (string, error) {
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(time.Hour * 24 * time.Duration(expiryDays)).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSignedKey())
}

// GetUserTokenValue reads the claims set by JWTMiddleware. ok is false on unauthenticated requests.
func GetUserTokenValue(c *fiber.Ctx) (UserToken, bool) {
	user, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return UserToken{}, false
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return UserToken{}, false
	}
	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return UserToken{UserId: id, Email: email, Role: role}, id != ""
}

// Protected protect routes
func JWTMiddleware() func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:   getSignedKey(),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return Unauthorized("Auth Token Missing")
	}
	return Unauthorized("Request Unauthorized")
}

func GetNewJWTClaim() jwt.MapClaims {
	return jwt.MapClaims{}
}

const devJWTSecret = "medicare-dev-secret"

var ErrJWTSecretMissing = errors.New("JWT_SECRET must be set when AUTH_REQUIRED is true")

// CheckJWTSecret refuses to run protected APIs on the development signing key.
func CheckJWTSecret(authRequired bool) error {
	if GetenvStr("JWT_SECRET", "") != "" {
		return nil
	}
	if authRequired {
		return ErrJWTSecretMissing
	}
	Logger.Warn().Msg("JWT_SECRET not set, tokens are signed with the development key")
	return nil
}

func getSignedKey() []byte {
	return []byte(GetenvStr("JWT_SECRET", devJWTSecret))
}
