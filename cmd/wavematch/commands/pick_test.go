package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cacack/wavematch/internal/domain"
)

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "M", genderLabel(domain.GenderMale))
	assert.Equal(t, "F", genderLabel(domain.GenderFemale))
	assert.Equal(t, "U", genderLabel(domain.GenderUnknown))
	assert.Equal(t, "U", genderLabel(domain.Gender("")))
}
