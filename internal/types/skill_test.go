package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		tag  string
		want Group
	}{
		{"M", GroupMandatory},
		{"mandatory", GroupMandatory},
		{" Mandatory ", GroupMandatory},
		{"d", GroupDesired},
		{"desired", GroupDesired},
		{"", GroupDesired},
		{"optional", GroupDesired},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGroup(tt.tag))
		})
	}
}

func TestGroup_Short(t *testing.T) {
	assert.Equal(t, "M", GroupMandatory.Short())
	assert.Equal(t, "D", GroupDesired.Short())
	assert.Equal(t, "D", Group("").Short())
}

func TestSynonymSet_ForIsCaseInsensitive(t *testing.T) {
	set := SynonymSet{"ci cd": {"jenkins", "pipeline"}}

	assert.Equal(t, []string{"jenkins", "pipeline"}, set.For("CI CD"))
	assert.Nil(t, set.For("tosca"))

	var empty SynonymSet
	assert.Nil(t, empty.For("anything"))
}

func TestSynonymSet_FormsStartsWithLabel(t *testing.T) {
	set := SynonymSet{"tosca": {"tricentis"}}

	assert.Equal(t, []string{"TOSCA", "tricentis"}, set.Forms("TOSCA"))
	assert.Equal(t, []string{"Splunk"}, set.Forms("Splunk"))
}

func TestSkillEntry_JSONOmitsMissingRequirement(t *testing.T) {
	entry := SkillEntry{Label: "TOSCA", Group: GroupMandatory}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"TOSCA","group":"mandatory"}`, string(data))

	entry.RequiredYears = IntPtr(5)
	data, err = json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"TOSCA","group":"mandatory","required_years":5}`, string(data))
}

func TestMatchRecord_Row(t *testing.T) {
	tests := []struct {
		name   string
		record MatchRecord
		want   RecordRow
	}{
		{
			name:   "present with years",
			record: MatchRecord{Skill: "TOSCA", Present: true, YearsFound: IntPtr(6), RequiredYears: IntPtr(5), Score: 1.0},
			want:   RecordRow{Skill: "TOSCA", Presence: "Yes", YearsFound: "6y", RequiredYears: "5y", ScorePercent: 100},
		},
		{
			name:   "absent",
			record: MatchRecord{Skill: "Splunk", RequiredYears: IntPtr(3)},
			want:   RecordRow{Skill: "Splunk", Presence: "No", RequiredYears: "3y"},
		},
		{
			name:   "fractional score rounds to two places",
			record: MatchRecord{Skill: "VUGen", Present: true, YearsFound: IntPtr(1), RequiredYears: IntPtr(3), Score: 0.7333333},
			want:   RecordRow{Skill: "VUGen", Presence: "Yes", YearsFound: "1y", RequiredYears: "3y", ScorePercent: 73.33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Row())
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(1.7))
}
