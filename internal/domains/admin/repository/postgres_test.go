package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardRankingsAreCappedAtFive(t *testing.T) {
	assert.Contains(t, topBooksQuery, "LIMIT 5")
	assert.Contains(t, donationsByBookQuery, "LIMIT 5")
}

func TestDashboardRankingsSkipInactiveRows(t *testing.T) {
	assert.Contains(t, topBooksQuery, "b.is_active = true")
	assert.Contains(t, donationsByBookQuery, "d.is_active = true")
	assert.True(t, strings.Contains(donationsByBookQuery, "d.status = 'Completada'"),
		"only completed donations count toward the ranking")
}
