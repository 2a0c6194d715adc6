package main

import "os"

type Config struct {
	DatabaseURL             string
	JWTSecret               string
	CookieName              string
	CookieSecure            bool
	CORSOrigin              string
	Port                    string
	AppURL                  string
	StripeSecretKey         string
	StripeWebhookSecret     string
	StripeProMonthlyPriceID string
}

func loadConfig() Config {
	secure := os.Getenv("COOKIE_SECURE") == "true"
	return Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		CookieName:              getenv("COOKIE_NAME", "wl_auth"),
		CookieSecure:            secure,
		CORSOrigin:              getenv("CORS_ORIGIN", "http://localhost:3000"),
		Port:                    getenv("PORT", "8080"),
		AppURL:                  os.Getenv("APP_URL"),
		StripeSecretKey:         os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:     os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeProMonthlyPriceID: os.Getenv("STRIPE_PRO_MONTHLY_PRICE_ID"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
