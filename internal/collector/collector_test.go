package collector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spboyer/assistant/internal/prompt"
	"github.com/spboyer/assistant/internal/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCollect_MandatoryThenChosen(t *testing.T) {
	out := new(bytes.Buffer)
	p := prompt.NewLine(strings.NewReader("Ama\n20\nblue\nrice\n"), out)

	set, err := New(p, FixedChooser{"color", "food"}).Collect()
	require.NoError(t, err)

	assert.Equal(t, []responses.Entry{
		{Key: "name", Value: "Ama"},
		{Key: "age", Value: "20"},
		{Key: "color", Value: "blue"},
		{Key: "food", Value: "rice"},
	}, set.Entries())

	output := out.String()
	assert.Contains(t, output, "What is your name? ")
	assert.Contains(t, output, "How old are you? ")
	assert.Contains(t, output, "What is your favorite color? ")
	assert.Contains(t, output, "What is your favorite food? ")
}

func TestCollect_RejectsInvalidAnswers(t *testing.T) {
	out := new(bytes.Buffer)
	input := strings.Join([]string{
		"",    // empty name
		"   ", // whitespace-only name
		"Kofi",
		"abc", // non-numeric age
		"0",
		"-3",
		"31",
		"", // empty city
		"Accra",
		"Hearts",
	}, "\n") + "\n"
	p := prompt.NewLine(strings.NewReader(input), out)

	set, err := New(p, FixedChooser{"city", "team"}).Collect()
	require.NoError(t, err)

	assert.Equal(t, "Kofi", set.GetOr("name", ""))
	assert.Equal(t, "31", set.GetOr("age", ""))
	assert.Equal(t, "Accra", set.GetOr("city", ""))
	assert.Equal(t, "Hearts", set.GetOr("team", ""))

	output := out.String()
	assert.Equal(t, 3, strings.Count(output, "Input cannot be empty. Please try again."))
	assert.Equal(t, 3, strings.Count(output, "Please enter a valid positive number for age."))
	assert.Equal(t, 3, strings.Count(output, "What is your name? "))
	assert.Equal(t, 4, strings.Count(output, "How old are you? "))
}

func TestCollect_VeryLongName(t *testing.T) {
	long := strings.Repeat("A", 70*1024)
	p := prompt.NewLine(strings.NewReader(long+"\n20\nblue\nrice\n"), new(bytes.Buffer))

	set, err := New(p, FixedChooser{"color", "food"}).Collect()
	require.NoError(t, err)
	assert.Equal(t, long, set.GetOr("name", ""))
	assert.Equal(t, "rice", set.GetOr("food", ""))
}

func TestCollect_InputClosed(t *testing.T) {
	p := prompt.NewLine(strings.NewReader("Ama\n"), new(bytes.Buffer))

	_, err := New(p, FixedChooser{"color", "food"}).Collect()
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestCollect_WithMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := prompt.NewMockPrompter(ctrl)
	c := NewMockChooser(ctrl)

	pool := responses.OptionalPool()
	c.EXPECT().Choose(pool).Return([]responses.Field{pool[4], pool[2]})

	gomock.InOrder(
		p.EXPECT().Ask("What is your name? ", gomock.Any()).Return("Ama", nil),
		p.EXPECT().Ask("How old are you? ", gomock.Any()).DoAndReturn(
			func(_ string, validate func(string) error) (string, error) {
				// the age rule must be the one handed to the prompter
				assert.ErrorIs(t, validate("0"), responses.ErrInvalidAge)
				return "20", nil
			}),
		p.EXPECT().Ask("What is your favorite soccer team? ", gomock.Any()).Return("Hearts", nil),
		p.EXPECT().Ask("Which city do you live in? ", gomock.Any()).Return("Accra", nil),
	)

	set, err := New(p, c).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "team", "city"}, set.Keys())
}

func TestCollect_RandomChooserProperties(t *testing.T) {
	pool := map[string]bool{}
	for _, f := range responses.OptionalPool() {
		pool[f.Key] = true
	}

	for seed := uint64(0); seed < 200; seed++ {
		p := prompt.NewLine(strings.NewReader("Ama\n20\n"+strings.Repeat("answer\n", 4)), new(bytes.Buffer))

		set, err := New(p, NewRandomChooser(seed)).Collect()
		require.NoError(t, err)

		keys := set.Keys()
		require.GreaterOrEqual(t, len(keys), 4)
		require.LessOrEqual(t, len(keys), 6)
		assert.Equal(t, "name", keys[0])
		assert.Equal(t, "age", keys[1])

		seen := map[string]bool{}
		for _, k := range keys[2:] {
			assert.True(t, pool[k], "unexpected optional key %q", k)
			assert.False(t, seen[k], "duplicate optional key %q", k)
			seen[k] = true
		}

		age := set.GetOr("age", "")
		assert.NoError(t, responses.ValidateAge(age))
	}
}
