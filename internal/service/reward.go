package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/vip102a/backend/internal/config"
)

// NewRewardCode returns a fresh code of the form LUCKY-XXXXXXXX. Codes are
// random per call; two deliveries for the same payload yield different codes.
func NewRewardCode() string {
	id := uuid.New()
	code := strings.ToUpper(hex.EncodeToString(id[:]))
	return config.RewardCodePrefix + code[:config.RewardCodeLength]
}
