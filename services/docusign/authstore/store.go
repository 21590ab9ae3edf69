package authstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mytime"
	"github.com/MarcGrol/ndaonboarding/lib/myuuid"
	"github.com/MarcGrol/ndaonboarding/lib/myvault"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

const (
	CookieName = "docusign_auth"
)

//go:generate mockgen -source=store.go -package authstore -destination store_mock.go AuthStore
type AuthStore interface {
	Save(c context.Context, w http.ResponseWriter, data docusignclient.AuthData) error
	Load(c context.Context, r *http.Request) (docusignclient.AuthData, bool, error)
}

// claims only identify the server-side session; the access token never reaches the browser
type claims struct {
	jwt.RegisteredClaims
}

type store struct {
	vault  myvault.VaultReadWriter[docusignclient.AuthData]
	uuider myuuid.UUIDer
	nower  mytime.Nower
	secret []byte
	secure bool
	logger mylog.Logger
}

func New(vault myvault.VaultReadWriter[docusignclient.AuthData], uuider myuuid.UUIDer, nower mytime.Nower, secret string, secure bool) AuthStore {
	return &store{
		vault:  vault,
		uuider: uuider,
		nower:  nower,
		secret: []byte(secret),
		secure: secure,
		logger: mylog.New("authstore"),
	}
}

func (s *store) Save(c context.Context, w http.ResponseWriter, data docusignclient.AuthData) error {
	if data.TokenData.ExpiresIn <= 0 {
		return myerrors.NewInvalidInputError(fmt.Errorf("authorization has no lifetime"))
	}
	ttl := time.Duration(data.TokenData.ExpiresIn) * time.Second
	now := s.nower.Now()
	sessionID := s.uuider.Create()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error signing session token: %s", err))
	}

	err = s.vault.Put(c, sessionID, data, ttl)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing authorization: %s", err))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(data.TokenData.ExpiresIn),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})

	s.logger.Log(c, sessionID, mylog.SeverityInfo, "Stored authorization of %s for %s", data.UserInfo.Email, ttl)

	return nil
}

func (s *store) Load(c context.Context, r *http.Request) (docusignclient.AuthData, bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return docusignclient.AuthData{}, false, nil
	}

	sessionID, err := s.sessionIDFrom(cookie.Value)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Ignoring authorization cookie: %s", err)
		return docusignclient.AuthData{}, false, nil
	}

	data, found, err := s.vault.Get(c, sessionID)
	if err != nil {
		return docusignclient.AuthData{}, false, myerrors.NewInternalError(fmt.Errorf("error fetching authorization: %s", err))
	}
	if !found {
		s.logger.Log(c, sessionID, mylog.SeverityInfo, "Authorization not found")
		return docusignclient.AuthData{}, false, nil
	}

	return data, true, nil
}

func (s *store) sessionIDFrom(tokenString string) (string, error) {
	sessionClaims := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, sessionClaims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.nower.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if sessionClaims.Subject == "" {
		return "", errors.New("token without session")
	}

	return sessionClaims.Subject, nil
}
