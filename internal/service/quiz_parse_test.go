package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n[1, 2]\n```": "[1, 2]",
		"```\n{\"a\": 1}\n```":  `{"a": 1}`,
		"  [1]  ":               "[1]",
		"```[1]```":             "[1]",
		"```json [1, 2] ```":    "[1, 2]",
		"```JSON{\"a\": 1}```":  `{"a": 1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFences(in), "input %q", in)
	}
}

func TestParseQuestions_FiltersMalformedEntries(t *testing.T) {
	text := "```json\n[" +
		`{"question": "Which subject do you enjoy most?", "options": ["Maths", "Biology", "History", "Accounts"]},` +
		`{"question": "", "options": ["a", "b", "c", "d"]},` +
		`{"question": "Too few options", "options": ["a", "b", "c"]},` +
		`{"options": ["a", "b", "c", "d"]},` +
		`"not an object",` +
		`{"question": "Do you like working with numbers?", "options": ["Yes", "No", "Sometimes", 4]}` +
		"]\n```"

	questions, err := ParseQuestions(text)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Which subject do you enjoy most?", questions[0].Question)
	assert.Equal(t, []string{"Yes", "No", "Sometimes", "4"}, questions[1].Options)
}

func TestParseQuestions_AnyFourOptions(t *testing.T) {
	text := `[{"question": "Pick one", "options": [{"text": "Lab work"}, {"label": "Field trips"}, null, {"id": 4}]}]`

	questions, err := ParseQuestions(text)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, []string{"Lab work", "Field trips", "", `{"id":4}`}, questions[0].Options)
}

func TestParseQuestions_WrappedObject(t *testing.T) {
	questions, err := ParseQuestions(`{"questions": [{"question": "Q1", "options": ["a", "b", "c", "d"]}]}`)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	_, err = ParseQuestions(`{"items": []}`)
	assert.Error(t, err)

	_, err = ParseQuestions("Sure! Here are your questions.")
	assert.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("embedded in prose", func(t *testing.T) {
		text := `Here is my advice: {"suggestion": "Science", "reason": "Strong in maths"} Good luck!`
		got, err := ExtractJSONObject(text)
		require.NoError(t, err)
		assert.Equal(t, `{"suggestion": "Science", "reason": "Strong in maths"}`, got)
	})

	t.Run("braces inside strings", func(t *testing.T) {
		text := `Result: {"suggestion": "Arts", "reason": "Likes {creative} work and \"}\" symbols"} end`
		got, err := ExtractJSONObject(text)
		require.NoError(t, err)
		assert.Equal(t, `{"suggestion": "Arts", "reason": "Likes {creative} work and \"}\" symbols"}`, got)
	})

	t.Run("nested objects", func(t *testing.T) {
		text := "```json\n{\"primary_suggestion\": \"Doctor\", \"alternate_suggestions\": [{\"career\": \"Nurse\", \"reason\": \"care\"}]}\n```"
		got, err := ExtractJSONObject(text)
		require.NoError(t, err)
		assert.Contains(t, got, `"career": "Nurse"`)
	})

	t.Run("skips invalid candidate", func(t *testing.T) {
		got, err := ExtractJSONObject(`{not json} then {"suggestion": "Commerce"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"suggestion": "Commerce"}`, got)
	})

	t.Run("never returns a nested fragment", func(t *testing.T) {
		_, err := ExtractJSONObject(`{"suggestion": "Science", "reason": "He said "wow" about {"note": 1}}`)
		assert.ErrorIs(t, err, errNoJSONObject)

		_, err = ExtractJSONObject(`{"suggestion": Science, "extra": {"note": 1}}`)
		assert.ErrorIs(t, err, errNoJSONObject)

		got, err := ExtractJSONObject(`{"bad": x, "inner": {"a": 1}} {"suggestion": "Arts"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"suggestion": "Arts"}`, got)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ExtractJSONObject("I cannot help with that.")
		assert.ErrorIs(t, err, errNoJSONObject)

		_, err = ExtractJSONObject(`{"unterminated": "value"`)
		assert.Error(t, err)
	})
}

func TestDecodeSuggestion(t *testing.T) {
	general, err := DecodeSuggestion(`{"suggestion": "Science"}`, ShapeGeneral)
	require.NoError(t, err)
	assert.Equal(t, "Science", general.Suggestion)
	assert.Equal(t, "", general.Reason)
	assert.Empty(t, general.Alternates)

	subject, err := DecodeSuggestion(`{
		"primary_suggestion": "Software Engineer",
		"primary_reason": "Enjoys logic",
		"alternate_suggestions": [{"career": "Data Scientist", "reason": "Statistics"}, "bogus", {"career": "Actuary"}]
	}`, ShapeSubject)
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", subject.Suggestion)
	assert.Equal(t, "Enjoys logic", subject.Reason)
	require.Len(t, subject.Alternates, 2)
	assert.Equal(t, "Actuary", subject.Alternates[1].Career)
	assert.Equal(t, "", subject.Alternates[1].Reason)

	missing, err := DecodeSuggestion(`{}`, ShapeSubject)
	require.NoError(t, err)
	assert.NotNil(t, missing.Alternates)
	assert.Empty(t, missing.Alternates)

	_, err = DecodeSuggestion(`[1, 2]`, ShapeGeneral)
	assert.Error(t, err)
}

func TestDecodeAlternates(t *testing.T) {
	got := DecodeAlternates(`[{"career": "Lawyer", "reason": "Debating"}]`)
	require.Len(t, got, 1)
	assert.Equal(t, "Lawyer", got[0].Career)

	for _, stored := range []string{"", "   ", "not json", `{"career": "x"}`, "null"} {
		got := DecodeAlternates(stored)
		assert.NotNil(t, got, "stored %q", stored)
		assert.Empty(t, got, "stored %q", stored)
	}
}
