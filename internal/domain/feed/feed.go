// Package feed holds the upstream record types for the hh.ru-style vacancy
// feed. Field presence is not guaranteed by the producer, so everything the
// writers depend on is a pointer.
package feed

import (
	"encoding/json"
	"fmt"
)

// ID is an externally assigned identifier. The upstream API is inconsistent
// about encoding ids as JSON numbers or strings, so both are accepted.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse id %q: %w", string(data), err)
	}
	*id = ID(n)
	return nil
}

type Employer struct {
	ID           *ID     `json:"id"`
	Name         *string `json:"name"`
	AlternateURL *string `json:"alternate_url"`
}

func (e Employer) Complete() bool {
	return e.ID != nil && e.Name != nil && e.AlternateURL != nil
}

type Salary struct {
	From     *int32  `json:"from"`
	To       *int32  `json:"to"`
	Currency *string `json:"currency"`
}

type Vacancy struct {
	ID           *ID     `json:"id"`
	Name         *string `json:"name"`
	AlternateURL *string `json:"alternate_url"`
	Salary       *Salary `json:"salary"`
}

func (v Vacancy) Complete() bool {
	return v.ID != nil && v.Name != nil && v.AlternateURL != nil
}

// DefaultCurrency is substituted when the feed omits the currency code.
const DefaultCurrency = "RUR"

// SalaryBounds applies the defaulting policy for missing salary data:
// absent or null bounds collapse to zero, an absent currency to RUR.
// "Unspecified" and "zero" are indistinguishable after this point.
func (v Vacancy) SalaryBounds() (from, to int32, currency string) {
	currency = DefaultCurrency
	if v.Salary == nil {
		return 0, 0, currency
	}
	if v.Salary.From != nil {
		from = *v.Salary.From
	}
	if v.Salary.To != nil {
		to = *v.Salary.To
	}
	if v.Salary.Currency != nil && *v.Salary.Currency != "" {
		currency = *v.Salary.Currency
	}
	return from, to, currency
}
