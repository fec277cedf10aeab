package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	body := map[string]any{}
	require.NoError(t, dec.Decode(&body))
	return body
}

func messages(result ValidationResult) []string {
	out := make([]string, len(result))
	for i, v := range result {
		out[i] = v.Msg
	}
	return out
}

func TestValidate_CreateRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "empty body",
			body: `{}`,
			want: []string{"name is required", "price must be a number", "price is required", "price not valid"},
		},
		{
			name: "zero price",
			body: `{"name":"Display - testing","price":0}`,
			want: []string{"price not valid"},
		},
		{
			name: "non numeric price",
			body: `{"name":"Display - testing","price":"Hola"}`,
			want: []string{"price must be a number", "price not valid"},
		},
		{
			name: "negative price",
			body: `{"name":"Display - testing","price":-3}`,
			want: []string{"price not valid"},
		},
		{
			name: "null fields",
			body: `{"name":null,"price":null}`,
			want: []string{"name is required", "price must be a number", "price is required", "price not valid"},
		},
		{
			name: "valid",
			body: `{"name":"yamaha - testing","price":420}`,
			want: []string{},
		},
		{
			name: "exponent price",
			body: `{"name":"yamaha - testing","price":1e3}`,
			want: []string{},
		},
		{
			name: "upper case exponent price",
			body: `{"name":"yamaha - testing","price":4.2E2}`,
			want: []string{},
		},
		{
			name: "fraction without integer part",
			body: `{"name":"yamaha - testing","price":".5"}`,
			want: []string{},
		},
		{
			name: "exponent string price",
			body: `{"name":"yamaha - testing","price":"1e3"}`,
			want: []string{"price must be a number"},
		},
		{
			name: "boolean price",
			body: `{"name":"yamaha - testing","price":true}`,
			want: []string{"price must be a number", "price not valid"},
		},
		{
			name: "numeric string price",
			body: `{"name":"yamaha - testing","price":"420.50"}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(createProductRules, Input{Body: decodeBody(t, tt.body)})
			assert.Equal(t, tt.want, messages(result))
		})
	}
}

func TestValidate_UpdateRules(t *testing.T) {
	t.Run("empty body on valid id", func(t *testing.T) {
		result := Validate(updateProductRules, Input{
			Params: map[string]string{"id": "1"},
			Body:   map[string]any{},
		})
		assert.Equal(t, []string{
			"name is required",
			"price must be a number",
			"price is required",
			"price not valid",
			"Invalid disponibility",
		}, messages(result))
	})

	t.Run("invalid id with valid body", func(t *testing.T) {
		result := Validate(updateProductRules, Input{
			Params: map[string]string{"id": "not-valid-url"},
			Body:   decodeBody(t, `{"name":"Producto nuevo","price":3000,"availability":true}`),
		})
		require.Len(t, result, 1)
		assert.Equal(t, "Invalid Id", result[0].Msg)
		assert.Equal(t, LocationParams, result[0].Location)
		assert.Equal(t, "id", result[0].Path)
	})

	t.Run("availability values", func(t *testing.T) {
		for _, raw := range []string{`true`, `false`, `"true"`, `"false"`, `1`, `0`} {
			body := decodeBody(t, `{"name":"x","price":1,"availability":`+raw+`}`)
			result := Validate(updateProductRules, Input{Params: map[string]string{"id": "1"}, Body: body})
			assert.Empty(t, result, "availability %s", raw)
		}
		for _, raw := range []string{`"yes"`, `2`, `null`, `"TRUE"`} {
			body := decodeBody(t, `{"name":"x","price":1,"availability":`+raw+`}`)
			result := Validate(updateProductRules, Input{Params: map[string]string{"id": "1"}, Body: body})
			assert.Equal(t, []string{"Invalid disponibility"}, messages(result), "availability %s", raw)
		}
	})
}

func TestValidate_ProductID(t *testing.T) {
	valid := []string{"1", "2000", "-5", "+7", "0"}
	for _, id := range valid {
		result := Validate(productIDRules, Input{Params: map[string]string{"id": id}})
		assert.Empty(t, result, "id %q", id)
	}

	invalid := []string{"not-valid-url", "", "1.5", "01", "1e3", " 1"}
	for _, id := range invalid {
		result := Validate(productIDRules, Input{Params: map[string]string{"id": id}})
		require.Len(t, result, 1, "id %q", id)
		assert.Equal(t, "Invalid Id", result[0].Msg)
	}
}

func TestValidate_ViolationValue(t *testing.T) {
	result := Validate(createProductRules, Input{Body: decodeBody(t, `{"price":"Hola"}`)})
	require.Len(t, result, 3)

	assert.Nil(t, result[0].Value, "absent name carries no value")
	assert.Equal(t, "Hola", result[1].Value)
	assert.Equal(t, "field", result[1].Type)
	assert.Equal(t, LocationBody, result[1].Location)
}

func TestInputFloat_Exponent(t *testing.T) {
	in := Input{Body: decodeBody(t, `{"price":4.2E2}`)}
	assert.Equal(t, "420", in.String("price"))
	assert.InDelta(t, 420, in.Float("price"), 1e-9)
}

func TestInputAccessors(t *testing.T) {
	in := Input{
		Params: map[string]string{"id": "12"},
		Body:   decodeBody(t, `{"name":123,"price":" 9.5 ","availability":"0"}`),
	}

	assert.Equal(t, "12", in.Param("id"))
	assert.Equal(t, "123", in.String("name"))
	assert.InDelta(t, 9.5, in.Float("price"), 1e-9)

	availability, ok := in.Bool("availability")
	assert.True(t, ok)
	assert.False(t, availability)

	_, ok = in.Bool("missing")
	assert.False(t, ok)
}
