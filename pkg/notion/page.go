package notion

// Page is one database row with its property map as returned by the query
// endpoint. Only the property shapes this service reads are decoded.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is the tagged value wrapper Notion attaches to every field.
// Type names the variant; exactly one of the payload fields is populated.
type PropertyValue struct {
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
}

// PlainText returns the first text run of a title or rich_text property.
// Any other variant, an empty run list or an empty string yields nil.
func (p PropertyValue) PlainText() *string {
	var runs []RichText
	switch p.Type {
	case "title":
		runs = p.Title
	case "rich_text":
		runs = p.RichText
	default:
		return nil
	}
	if len(runs) == 0 || runs[0].PlainText == "" {
		return nil
	}
	s := runs[0].PlainText
	return &s
}

// SelectName returns the selected option label of a select property.
func (p PropertyValue) SelectName() *string {
	if p.Type != "select" || p.Select == nil || p.Select.Name == "" {
		return nil
	}
	s := p.Select.Name
	return &s
}

// NumberValue returns the numeric value of a number property.
// Zero is a valid value, distinct from an unset field.
func (p PropertyValue) NumberValue() *float64 {
	if p.Type != "number" || p.Number == nil {
		return nil
	}
	n := *p.Number
	return &n
}

// DateStart returns the start date string of a date property.
func (p PropertyValue) DateStart() *string {
	if p.Type != "date" || p.Date == nil || p.Date.Start == "" {
		return nil
	}
	s := p.Date.Start
	return &s
}
