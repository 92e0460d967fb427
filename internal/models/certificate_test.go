package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	reviews := []CertificateReview{
		{UserID: 1, Rating: 4},
		{UserID: 2, Rating: 5},
	}

	rating := AverageRating(reviews)
	assert.Equal(t, 4.5, rating.Average)
	assert.Equal(t, 2, rating.Count)
}

func TestAverageRating_Empty(t *testing.T) {
	rating := AverageRating(nil)
	assert.Equal(t, 0.0, rating.Average)
	assert.Equal(t, 0, rating.Count)
}

func TestAverageRating_Single(t *testing.T) {
	rating := AverageRating([]CertificateReview{{UserID: 1, Rating: 3}})
	assert.Equal(t, 3.0, rating.Average)
	assert.Equal(t, 1, rating.Count)
}

func TestValidCertificateCategory(t *testing.T) {
	assert.True(t, ValidCertificateCategory("cloud-computing"))
	assert.True(t, ValidCertificateCategory("other"))
	// "other" exists for certificates but not for tests.
	assert.False(t, ValidCategory("other"))
	assert.False(t, ValidCertificateCategory("astrology"))
}
