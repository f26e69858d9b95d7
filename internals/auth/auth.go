package auth

import (
	"errors"
	"time"

	"github.com/matchday/api-server/internals/apperr"
	"github.com/matchday/api-server/pkg/kvstore"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"
)

// AuthService issues and verifies session tokens. Tokens are whitelisted in
// the KV store per user so a logout on one device revokes exactly one token.
type AuthService struct {
	KV     kvstore.KVStore
	DB     *gorm.DB
	Secret []byte
}

func New(kv kvstore.KVStore, db *gorm.DB, secret string) *AuthService {
	return &AuthService{
		KV:     kv,
		DB:     db,
		Secret: []byte(secret),
	}
}

func sessionKey(username string) string {
	return "session_token_" + username
}

func (a *AuthService) Login(loginDetails LoginRequestBody) (string, error) {
	var user User
	err := a.DB.Table("users").Where("username = ?", loginDetails.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Unauthorized("invalid credentials")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	if user.Password != loginDetails.Password {
		return "", apperr.Unauthorized("invalid credentials")
	}

	token, err := a.GenerateToken(user.Username)
	if err != nil {
		return "", apperr.Internal(err)
	}

	// One list entry per active device
	if err := a.KV.RPush(sessionKey(user.Username), token); err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

func (a *AuthService) GenerateToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	})

	return token.SignedString(a.Secret)
}

func (a *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return a.Secret, nil
	})
	if err != nil {
		return "", apperr.Unauthorized("invalid token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		username, ok := claims["username"].(string)
		if !ok {
			return "", apperr.Unauthorized("invalid token")
		}
		return username, nil
	}

	return "", apperr.Unauthorized("invalid token")
}

func (a *AuthService) CheckIfTokenIsWhiteListed(username string, tokenString string) bool {
	tokens, err := a.KV.LRange(sessionKey(username), 0, -1)
	if err != nil {
		return false
	}

	for _, t := range tokens {
		if t == tokenString {
			return true
		}
	}

	return false
}

func (a *AuthService) Logout(username string, tokenString string) error {
	if err := a.KV.LRem(sessionKey(username), 1, tokenString); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (a *AuthService) SignUp(signUpDetails SignUpRequestBody) error {
	var count int64
	err := a.DB.Table("users").Where("mail_id = ? OR username = ?", signUpDetails.MailID, signUpDetails.Username).Count(&count).Error
	if err != nil {
		return apperr.Internal(err)
	}

	if count > 0 {
		return apperr.Conflict("user already exists")
	}

	err = a.DB.Table("users").Create(&User{
		Username:   signUpDetails.Username,
		MailID:     signUpDetails.MailID,
		Password:   signUpDetails.Password,
		ProfilePic: "default.jpg",
	}).Error
	if err != nil {
		return apperr.Internal(err)
	}

	return nil
}
