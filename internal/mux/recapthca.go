package mux

import (
	"time"

	grecaptcha "github.com/ezzarghili/recaptcha-go"
	"github.com/sirupsen/logrus"

	appconfig "rogueblind-server/internal/config"
)

type recaptcha interface {
	// Verify will verify the token is valid
	Verify(token string) error
}

func newRecaptcha() recaptcha {
	secret := appconfig.Instance().RecaptchaSecret
	if secret == "" {
		// the server refuses to start without a secret; this path is for tests
		logrus.Warn("recaptcha secret not configured, registration is unguarded")
		return noopRecaptcha{}
	}

	captcha, err := grecaptcha.NewReCAPTCHA(secret, grecaptcha.V3, 10*time.Second)
	if err != nil {
		logrus.WithError(err).Fatal("could not load recaptcha")
	}

	return &captcha
}

type noopRecaptcha struct{}

func (noopRecaptcha) Verify(string) error {
	return nil
}
