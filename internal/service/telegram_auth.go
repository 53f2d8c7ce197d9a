package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const initDataMaxAge = time.Hour

// ValidateTelegramInitData checks the WebApp init_data signature
// against the bot token and rejects payloads older than an hour so a
// captured string cannot be replayed later.
func ValidateTelegramInitData(initData, botToken string) (url.Values, bool) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}

	provided := values.Get("hash")
	if provided == "" {
		return nil, false
	}
	values.Del("hash")

	var pairs []string
	for k, v := range values {
		pairs = append(pairs, k+"="+strings.Join(v, ""))
	}
	sort.Strings(pairs)

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))

	providedBytes, err := hex.DecodeString(provided)
	if err != nil {
		return nil, false
	}
	if !hmac.Equal(mac.Sum(nil), providedBytes) {
		return nil, false
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, false
	}

	now := time.Now().Unix()
	// allow small forward clock skew, reject anything past max age
	if now-authDate > int64(initDataMaxAge.Seconds()) || authDate-now > 300 {
		return nil, false
	}

	return values, true
}
