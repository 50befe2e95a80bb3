package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextScenario1SingleBPMNoStops(t *testing.T) {
	src := `
#TITLE:Test Song;
#BPMS:0=120;
#OFFSET:0;
#NOTES:
     dance-single:
     :
     Easy:
     1:
     0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0:
0000
0000
0000
0000
;
`
	sf, err := ParseText(src, "/base")
	require.NoError(t, err)
	require.Len(t, sf.Charts, 1)

	chart := sf.Charts[0]
	require.Len(t, chart.Notefield, 4)

	want := []string{"0", "1/2", "1", "3/2"}
	for i, w := range want {
		assert.Equal(t, w, chart.Notefield[i].Time.R.String(), "row %d", i)
	}
	assert.Equal(t, "Test Song", sf.Title)
}

func TestParseTextStripsLineComments(t *testing.T) {
	src := `
// this is a comment
#TITLE:Hidden; // not this
#BPMS:0=120;
`
	sf, err := ParseText(src, "/base")
	require.NoError(t, err)
	assert.Equal(t, "Hidden", sf.Title)
}

func TestParseTextUnknownTagGoesToMeta(t *testing.T) {
	src := `#BPMS:0=120;#SELECTABLE:YES;`
	sf, err := ParseText(src, "/base")
	require.NoError(t, err)
	v, ok := sf.Meta["SELECTABLE"]
	require.True(t, ok)
	assert.Equal(t, "YES", v)
}

func TestParseTextMissingBPMSIsStructuralError(t *testing.T) {
	src := `#TITLE:No BPM;`
	_, err := ParseText(src, "/base")
	assert.Error(t, err)
}

func TestParseTextInvalidRowCharIsLexicalError(t *testing.T) {
	src := `
#BPMS:0=120;
#NOTES:dance-single::Easy:1::
X000
0000
0000
0000
;
`
	_, err := ParseText(src, "/base")
	assert.Error(t, err)
}

func TestParseTextUnmatchedHoldIsStructuralError(t *testing.T) {
	src := `
#BPMS:0=120;
#NOTES:dance-single::Easy:1::
2000
0000
0000
0000
;
`
	_, err := ParseText(src, "/base")
	assert.Error(t, err)
}

func TestParseTextDisplayBPMVariants(t *testing.T) {
	wildcard, err := ParseText(`#BPMS:0=120;#DISPLAYBPM:*;`, "/base")
	require.NoError(t, err)
	assert.True(t, wildcard.DisplayBPM.IsVariable())

	ranged, err := ParseText(`#BPMS:0=120;#DISPLAYBPM:90:180;`, "/base")
	require.NoError(t, err)
	lo, hi := ranged.DisplayBPM.Range()
	assert.Equal(t, "90", lo.String())
	assert.Equal(t, "180", hi.String())
}

func TestParseTextSynthesizesDisplayBPMWhenAbsent(t *testing.T) {
	sf, err := ParseText(`#BPMS:0=120,4=180;`, "/base")
	require.NoError(t, err)
	lo, hi := sf.DisplayBPM.Range()
	assert.Equal(t, "120", lo.String())
	assert.Equal(t, "180", hi.String())
}

func TestParseTextRejectsWrongNotesFieldCount(t *testing.T) {
	src := `#BPMS:0=120;#NOTES:dance-single::Easy:1:;`
	_, err := ParseText(src, "/base")
	assert.Error(t, err)
}
