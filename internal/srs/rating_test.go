package srs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/flashrecall/internal/errs"
)

func TestRating_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Again", Again.String())
	require.Equal(t, "Easy", Easy.String())
	require.Equal(t, "Rating(9)", Rating(9).String())
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	ok := map[string]Rating{"again": Again, "HARD": Hard, " Good ": Good, "4": Easy, "1": Again}
	for in, want := range ok {
		got, err := ParseRating(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "0", "5", "meh", "-1"} {
		_, err := ParseRating(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, errs.ErrInvalidRating), in)
	}
}

func TestRating_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Good)
	require.NoError(t, err)
	require.JSONEq(t, `"Good"`, string(b))

	_, err = json.Marshal(Rating(0))
	require.Error(t, err)

	var r Rating
	require.NoError(t, json.Unmarshal([]byte(`"easy"`), &r))
	require.Equal(t, Easy, r)
	require.NoError(t, json.Unmarshal([]byte(`2`), &r))
	require.Equal(t, Hard, r)

	err = json.Unmarshal([]byte(`7`), &r)
	require.True(t, errors.Is(err, errs.ErrInvalidRating))
	require.Equal(t, Hard, r)
}
