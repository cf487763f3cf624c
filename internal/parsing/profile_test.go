package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

func TestNewProfile_Empty(t *testing.T) {
	_, err := NewProfile("  \n\t")
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}

func TestProfile_SeedsSkillsFromCandidates(t *testing.T) {
	p, err := NewProfile(sampleJD)
	require.NoError(t, err)

	assert.Equal(t, sampleJD, p.RawText())
	assert.NotEmpty(t, p.Candidates())

	labels := make([]string, 0, len(p.Skills()))
	for _, s := range p.Skills() {
		labels = append(labels, s.Label)
	}
	assert.Contains(t, labels, "TOSCA")
	assert.Contains(t, labels, "CI CD")

	assert.Equal(t, intp(5), p.Requirement("TOSCA"))
	assert.Equal(t, intp(5), p.Requirement("tosca"))
}

func TestProfile_SetSkillsInvalidatesCache(t *testing.T) {
	p, err := NewProfile(sampleJD)
	require.NoError(t, err)
	require.Contains(t, p.reqCache, "tosca")
	require.Contains(t, p.reqCache, "splunk")

	p.SetSkills([]types.SkillEntry{
		{Label: "Splunk", Group: types.GroupMandatory},
		{Label: "JMeter"},
	})

	assert.NotContains(t, p.reqCache, "tosca")
	assert.Contains(t, p.reqCache, "splunk")
	assert.Len(t, p.Skills(), 2)

	assert.Nil(t, p.Requirement("JMeter"))
	assert.Contains(t, p.reqCache, "jmeter")
}

func TestProfile_Build(t *testing.T) {
	p, err := NewProfile(sampleJD)
	require.NoError(t, err)

	p.SetSkills([]types.SkillEntry{
		{Label: "TOSCA", Group: types.GroupMandatory},
		{Label: "Splunk", Group: types.GroupDesired, RequiredYears: types.IntPtr(3)},
		{Label: "Dynatrace", Group: types.GroupDesired},
	})

	profile := p.Build()

	assert.Equal(t, sampleJD, profile.RawText)
	require.Len(t, profile.Skills, 3)
	assert.Equal(t, intp(5), profile.Skills[0].RequiredYears)
	assert.Equal(t, intp(3), profile.Skills[1].RequiredYears)
	assert.Nil(t, profile.Skills[2].RequiredYears)
	assert.Equal(t, map[string]*int{
		"tosca":     intp(5),
		"splunk":    intp(3),
		"dynatrace": nil,
	}, profile.Requirements)
}
