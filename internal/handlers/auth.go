package handlers

import (
	"context"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/edumela/admin-api/internal/handlers/schemas"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/repository"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AuthHandler struct {
	jwtConfig   *JWTConfig
	UserStorage repository.UserStorageRepositoryI
	validate    *validatorv10.Validate
}

func NewAuthHandler(jwtConfig *JWTConfig, storage repository.UserStorageRepositoryI, validate *validatorv10.Validate) *AuthHandler {
	return &AuthHandler{
		jwtConfig:   jwtConfig,
		UserStorage: storage,
		validate:    validate,
	}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req schemas.RegisterRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	existingUser, _ := h.UserStorage.GetUserByUsername(r.Context(), req.Username)
	if existingUser != nil && existingUser.Username != "" {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		logger.Log.Error("error generating password hash", zap.Error(err))
		return
	}

	user, err := h.UserStorage.CreateUser(r.Context(), req.Username, string(hashedPassword))
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		logger.Log.Error("error creating user in DB", zap.Error(err))
		return
	}

	h.respondWithTokens(w, user, http.StatusCreated)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req schemas.LoginRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.UserStorage.GetUserByUsername(r.Context(), req.Username)
	if err != nil || user == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if !user.CheckPassword(req.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.respondWithTokens(w, user, http.StatusOK)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"access_token", "refresh_token"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
		})
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	refreshToken := tokenFromRequest(r, "refresh_token")
	if refreshToken == "" {
		http.Error(w, "Refresh token required", http.StatusUnauthorized)
		return
	}

	claims, err := h.ValidateToken(refreshToken)
	if err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := h.UserStorage.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	h.respondWithTokens(w, user, http.StatusOK)
}

func (h *AuthHandler) respondWithTokens(w http.ResponseWriter, user *models.User, status int) {
	accessToken, refreshToken, err := h.generateTokens(user)
	if err != nil {
		http.Error(w, "Error generating tokens", http.StatusInternalServerError)
		return
	}

	h.setTokensInCookies(w, accessToken, refreshToken)

	writeJSON(w, status, schemas.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    time.Now().Add(h.jwtConfig.AccessTokenTTL).Unix(),
	})
}

func (h *AuthHandler) generateTokens(user *models.User) (string, string, error) {
	sign := func(ttl time.Duration) (string, error) {
		claims := Claims{
			UserID:   user.ID,
			Username: user.Username,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Subject:   user.Username,
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		return token.SignedString([]byte(h.jwtConfig.SecretKey))
	}

	accessToken, err := sign(h.jwtConfig.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := sign(h.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (h *AuthHandler) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.jwtConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

func (h *AuthHandler) setTokensInCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		Expires:  time.Now().Add(h.jwtConfig.AccessTokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(h.jwtConfig.RefreshTokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

// GetUserFromContext returns the authenticated admin, or nil outside the
// auth middleware.
func GetUserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}
