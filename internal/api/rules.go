package api

import "slices"

// Location is where a validated field is read from.
type Location string

const (
	LocationParams Location = "params"
	LocationBody   Location = "body"
)

// Rule is a single constraint on one request field. Tag is a validator tag
// evaluated against the field's text form.
type Rule struct {
	Field    string
	Location Location
	Tag      string
	Message  string
}

// RuleSet is evaluated in order; every rule runs.
type RuleSet []Rule

func (rs RuleSet) reads(loc Location) bool {
	return slices.ContainsFunc(rs, func(r Rule) bool { return r.Location == loc })
}

var productIDRules = RuleSet{
	{Field: "id", Location: LocationParams, Tag: "integer", Message: "Invalid Id"},
}

var productBodyRules = RuleSet{
	{Field: "name", Location: LocationBody, Tag: "required", Message: "name is required"},
	{Field: "price", Location: LocationBody, Tag: "number", Message: "price must be a number"},
	{Field: "price", Location: LocationBody, Tag: "required", Message: "price is required"},
	{Field: "price", Location: LocationBody, Tag: "positive", Message: "price not valid"},
}

var createProductRules = productBodyRules

var updateProductRules = slices.Concat(
	productIDRules,
	productBodyRules,
	RuleSet{
		{Field: "availability", Location: LocationBody, Tag: "strictbool", Message: "Invalid disponibility"},
	},
)
