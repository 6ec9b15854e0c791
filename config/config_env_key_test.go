package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "portfolio"},
		},
		"secretKey": map[string]any{"access": "", "refresh": ""},
		"auth": map[string]any{
			"refreshTokenTTL":      "24h",
			"sessionPurgeInterval": "1h",
		},
		"mail": map[string]any{
			"adminEmail": "",
			"qrCode":     map[string]any{"size": 200},
		},
		"alert": map[string]any{
			"twilio": map[string]any{"authToken": ""},
		},
		"site": map[string]any{"webURL": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":             "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":     "postgres.master.userName",
		"SECRETKEY_REFRESH":            "secretKey.refresh",
		"AUTH_REFRESHTOKENTTL":         "auth.refreshTokenTTL",
		"AUTH_SESSIONPURGEINTERVAL":    "auth.sessionPurgeInterval",
		"MAIL_ADMINEMAIL":              "mail.adminEmail",
		"MAIL_QRCODE_SIZE":             "mail.qrCode.size",
		"ALERT_TWILIO_AUTHTOKEN":       "alert.twilio.authToken",
		"SITE_WEBURL":                  "site.webURL",
		"SITE__WEBURL":                 "site.webURL",
		"UNKNOWN_SECTION_KEY":          "unknown.section.key",
		"MAIL_QRCODE_UNKNOWN_PROPERTY": "mail.qrCode.unknown.property",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
