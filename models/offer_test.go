package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	assert.True(t, (&Offer{Enabled: true}).ActiveAt(now))
	assert.False(t, (&Offer{Enabled: false}).ActiveAt(now))

	assert.True(t, (&Offer{Enabled: true, StartsAt: &before, EndsAt: &after}).ActiveAt(now))
	assert.False(t, (&Offer{Enabled: true, StartsAt: &after}).ActiveAt(now))
	assert.False(t, (&Offer{Enabled: true, EndsAt: &before}).ActiveAt(now))
}
