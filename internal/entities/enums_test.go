package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToWorkMode(t *testing.T) {
	mode, err := ToWorkMode("Part Time")
	assert.NoError(t, err)
	assert.Equal(t, PartTime, mode)

	_, err = ToWorkMode("part time")
	assert.Error(t, err)

	_, err = ToWorkMode("")
	assert.Error(t, err)
}

func Test_ToEducation(t *testing.T) {
	education, err := ToEducation("12 Pass")
	assert.NoError(t, err)
	assert.Equal(t, TwelvePass, education)

	_, err = ToEducation("PhD")
	assert.Error(t, err)
}

func Test_ToSkill(t *testing.T) {
	skill, err := ToSkill("Web Developer")
	assert.NoError(t, err)
	assert.Equal(t, Skill("Web Developer"), skill)

	_, err = ToSkill("Astronaut")
	assert.Error(t, err)
}

func Test_ToGenderPreference(t *testing.T) {
	pref, err := ToGenderPreference("Both")
	assert.NoError(t, err)
	assert.Equal(t, Both, pref)

	// applicant-side values are not valid preferences
	_, err = ToGenderPreference("Male")
	assert.Error(t, err)
}

func Test_ToJobStatus(t *testing.T) {
	for _, valid := range []string{"New", "Accepted", "Rejected"} {
		status, err := ToJobStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, JobStatus(valid), status)
	}

	_, err := ToJobStatus("Pending")
	assert.Error(t, err)
}
