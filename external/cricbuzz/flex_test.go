package cricbuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexScalars(t *testing.T) {
	t.Parallel()

	var row struct {
		Quoted  ID     `json:"quoted"`
		Number  ID     `json:"number"`
		Empty   Count  `json:"empty"`
		Dash    Count  `json:"dash"`
		Float   Count  `json:"float"`
		NotOut  Count  `json:"not_out"`
		Null    *Count `json:"null"`
		Overs   Overs  `json:"overs"`
		NumOver Overs  `json:"num_over"`
		Yes     Flag   `json:"yes"`
		One     Flag   `json:"one"`
		No      Flag   `json:"no"`
	}
	payload := `{"quoted": " 42 ", "number": 7, "empty": "", "dash": "-", "float": "12.0", "not_out": "45*", "null": null,
		"overs": "19.4", "num_over": 4.2, "yes": "Y", "one": 1, "no": false}`
	require.NoError(t, rawAPI.Unmarshal([]byte(payload), &row))

	assert.Equal(t, ID(42), row.Quoted)
	assert.Equal(t, ID(7), row.Number)
	assert.Equal(t, Count(0), row.Empty)
	assert.Equal(t, Count(0), row.Dash)
	assert.Equal(t, Count(12), row.Float)
	assert.Equal(t, Count(45), row.NotOut)
	assert.Nil(t, row.Null)
	assert.Equal(t, Overs("19.4"), row.Overs)
	assert.Equal(t, Overs("4.2"), row.NumOver)
	assert.True(t, bool(row.Yes))
	assert.True(t, bool(row.One))
	assert.False(t, bool(row.No))
	assert.Equal(t, "42", row.Quoted.String())
}

func TestFlexScalars_RejectGarbage(t *testing.T) {
	t.Parallel()

	var id ID
	assert.Error(t, rawAPI.Unmarshal([]byte(`"abc"`), &id))

	var flag Flag
	assert.Error(t, rawAPI.Unmarshal([]byte(`"perhaps"`), &flag))
}
