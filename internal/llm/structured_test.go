package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name string `json:"name"`
	Days []struct {
		Day int `json:"day"`
	} `json:"days"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"name":"trip","days":[{"day":1}]}`
	result, err := ExtractJSON[testPayload](raw, testSchema(), nil)
	require.NoError(t, err)
	assert.Equal(t, "trip", result.Name)
	require.Len(t, result.Days, 1)
	assert.Equal(t, 1, result.Days[0].Day)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"name\":\"trip\",\"days\":[]}\n```"
	result, err := ExtractJSON[testPayload](raw, testSchema(), nil)
	require.NoError(t, err)
	assert.Equal(t, "trip", result.Name)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your plan:\n{\"name\":\"a {curly} name\",\"days\":[]}\nEnjoy!"
	result, err := ExtractJSON[testPayload](raw, testSchema(), nil)
	require.NoError(t, err)
	assert.Equal(t, "a {curly} name", result.Name)
}

func TestExtractJSON_EmptyResponse(t *testing.T) {
	_, err := ExtractJSON[testPayload]("   \n", testSchema(), nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.ErrorIs(t, err, ErrProvider)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I can't help with that.", testSchema(), nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrProvider)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"name":"x", broken}`, testSchema(), nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MissingRequiredFieldRejected(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"name":"x"}`, testSchema(), nil)
	require.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "days")
}

func TestExtractJSON_WithoutSchemaDefaultsMissingFields(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"name":"x"}`, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, result.Days)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Name == "" {
			return fmt.Errorf("name must not be blank")
		}
		return nil
	}
	_, err := ExtractJSON(`{"name":"","days":[]}`, testSchema(), validator)
	require.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
