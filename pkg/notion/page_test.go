package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyValue_PlainText(t *testing.T) {
	tests := []struct {
		name string
		prop PropertyValue
		want *string
	}{
		{
			name: "title with one run",
			prop: PropertyValue{Type: "title", Title: []RichText{{PlainText: "古民家A"}}},
			want: strPtr("古民家A"),
		},
		{
			name: "rich_text with one run",
			prop: PropertyValue{Type: "rich_text", RichText: []RichText{{PlainText: "京都市左京区"}}},
			want: strPtr("京都市左京区"),
		},
		{
			name: "title with no runs",
			prop: PropertyValue{Type: "title"},
			want: nil,
		},
		{
			name: "empty first run",
			prop: PropertyValue{Type: "rich_text", RichText: []RichText{{PlainText: ""}}},
			want: nil,
		},
		{
			name: "mistyped source",
			prop: PropertyValue{Type: "number", Number: f64Ptr(5)},
			want: nil,
		},
		{
			name: "zero value",
			prop: PropertyValue{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prop.PlainText()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestPropertyValue_SelectName(t *testing.T) {
	p := PropertyValue{Type: "select", Select: &SelectOption{Name: "木造"}}
	require.NotNil(t, p.SelectName())
	assert.Equal(t, "木造", *p.SelectName())

	assert.Nil(t, PropertyValue{Type: "select"}.SelectName())
	assert.Nil(t, PropertyValue{Type: "rich_text", Select: &SelectOption{Name: "木造"}}.SelectName())
}

func TestPropertyValue_NumberValue(t *testing.T) {
	// Zero is a valid value, distinct from an unset field.
	zero := PropertyValue{Type: "number", Number: f64Ptr(0)}
	require.NotNil(t, zero.NumberValue())
	assert.Equal(t, 0.0, *zero.NumberValue())

	assert.Nil(t, PropertyValue{Type: "number"}.NumberValue())
	assert.Nil(t, PropertyValue{Type: "date", Number: f64Ptr(1)}.NumberValue())
}

func TestPropertyValue_DateStart(t *testing.T) {
	p := PropertyValue{Type: "date", Date: &DateValue{Start: "1975-04-01"}}
	require.NotNil(t, p.DateStart())
	assert.Equal(t, "1975-04-01", *p.DateStart())

	assert.Nil(t, PropertyValue{Type: "date"}.DateStart())
	assert.Nil(t, PropertyValue{Type: "date", Date: &DateValue{}}.DateStart())
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
