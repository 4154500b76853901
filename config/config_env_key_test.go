package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"pubsub":    map[string]any{"topicId": ""},
		"otp":       map[string]any{"resendCooldown": "60s"},
		"auth":      map[string]any{"maxActiveSessions": 5},
		"secretKey": map[string]any{"access": "", "refresh": ""},
		"worker":    map[string]any{"verifyPushToken": false},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"OTP_RESENDCOOLDOWN":       "otp.resendCooldown",
		"AUTH_MAXACTIVESESSIONS":   "auth.maxActiveSessions",
		"SECRETKEY_REFRESH":        "secretKey.refresh",
		"WORKER_VERIFYPUSHTOKEN":   "worker.verifyPushToken",
		"REDIS_ADDR":               "redis.addr",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
