package championship

import (
	"testing"
	"time"

	"github.com/matchday/api-server/internals/apperr"

	"github.com/stretchr/testify/assert"
)

func TestCheckProposalSlot(t *testing.T) {
	assert.NoError(t, checkProposalSlot(0, 0))
	assert.NoError(t, checkProposalSlot(maxMatchDates-1, 0))
}

func TestCheckProposalSlotCapReached(t *testing.T) {
	err := checkProposalSlot(maxMatchDates, 0)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "you cannot add more dates")

	// The cap wins over the duplicate check.
	err = checkProposalSlot(maxMatchDates, 1)
	assert.EqualError(t, err, "you cannot add more dates")
}

func TestCheckProposalSlotDuplicateDate(t *testing.T) {
	err := checkProposalSlot(2, 1)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "date already exists")
}

func TestAcceptGuard(t *testing.T) {
	assert.NoError(t, acceptGuard(&Match{Team1: "a", Team2: "b"}, 1))
}

func TestAcceptGuardMissingMatch(t *testing.T) {
	err := acceptGuard(nil, 1)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "match not found")
}

func TestAcceptGuardDateAlreadyAssigned(t *testing.T) {
	assigned := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	err := acceptGuard(&Match{Team1: "a", Team2: "b", MatchDate: &assigned}, 1)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "date already assigned")
}

func TestAcceptGuardUnknownDate(t *testing.T) {
	err := acceptGuard(&Match{Team1: "a", Team2: "b"}, 0)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "date does not exist")
}

func TestNormalizeDateDropsSeconds(t *testing.T) {
	date := time.Date(2026, 3, 14, 18, 30, 45, 123, time.UTC)
	want := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, want, normalizeDate(date))
}
