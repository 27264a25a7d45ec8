package types

import (
	"bytes"
	"encoding/json"
)

// StringOrSlice is a policy field that IAM serializes either as a single
// string or as a list of strings. It is always a slice after decoding.
type StringOrSlice []string

func (s *StringOrSlice) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = StringOrSlice{single}
	return nil
}

// MarshalJSON keeps the original wire shape: a one-element value goes back
// out as a bare string.
func (s StringOrSlice) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

type Statement struct {
	Sid       string                            `json:"Sid,omitempty"`
	Effect    string                            `json:"Effect"`
	Action    StringOrSlice                     `json:"Action,omitempty"`
	Resource  StringOrSlice                     `json:"Resource,omitempty"`
	Condition map[string]map[string]interface{} `json:"Condition,omitempty"`
	Principal interface{}                       `json:"Principal,omitempty"`
}

// Resources returns the statement's resource list. An absent Resource field
// means the statement applies to every resource.
func (s Statement) Resources() []string {
	if len(s.Resource) == 0 {
		return []string{"*"}
	}
	return s.Resource
}

func (s Statement) HasCondition() bool {
	return len(s.Condition) > 0
}

// StatementList accepts both a single statement object and a list of them.
type StatementList []Statement

func (l *StatementList) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var list []Statement
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}

	var single Statement
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = StatementList{single}
	return nil
}

type PolicyDocument struct {
	Version   string        `json:"Version"`
	Statement StatementList `json:"Statement"`
}

// Policy identifies one customer-managed policy.
type Policy struct {
	Name string
	Arn  string
}
