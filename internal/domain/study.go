package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Study is one persisted analysis produced by a method module.
// Re-saving a study with an existing ID replaces the prior entry in
// place and refreshes Date; all other saves append.
type Study struct {
	ID     string
	Method Method
	Title  string
	Date   time.Time
	Data   StudyData
}

// StudyData is the method-specific payload of a study. Every payload
// carries a pre-rendered Analysis string so history rendering never
// needs method-specific logic.
type StudyData interface {
	Method() Method
	AnalysisText() string
}

// DisplayID returns a short identifier for table display.
func (s *Study) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// studyJSON is the persisted wire shape. The method label doubles as
// the union tag for the data payload.
type studyJSON struct {
	ID     string          `json:"id"`
	Method Method          `json:"method"`
	Title  string          `json:"title"`
	Date   string          `json:"date"`
	Data   json.RawMessage `json:"data"`
}

// MarshalJSON encodes a study with its payload under the method tag.
func (s Study) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s payload: %w", s.Method, err)
	}
	return json.Marshal(studyJSON{
		ID:     s.ID,
		Method: s.Method,
		Title:  s.Title,
		Date:   s.Date.UTC().Format(time.RFC3339),
		Data:   data,
	})
}

// UnmarshalJSON decodes a study, dispatching the payload decode on the
// method tag. An unknown method or malformed payload is an error the
// store treats as absent data.
func (s *Study) UnmarshalJSON(raw []byte) error {
	var sj studyJSON
	if err := json.Unmarshal(raw, &sj); err != nil {
		return fmt.Errorf("decoding study: %w", err)
	}

	date, err := time.Parse(time.RFC3339, sj.Date)
	if err != nil {
		return fmt.Errorf("parsing study date: %w", err)
	}

	data, err := UnmarshalStudyData(sj.Method, sj.Data)
	if err != nil {
		return err
	}

	s.ID = sj.ID
	s.Method = sj.Method
	s.Title = sj.Title
	s.Date = date
	s.Data = data
	return nil
}

// UnmarshalStudyData decodes a raw payload into the concrete type for
// the given method.
func UnmarshalStudyData(method Method, raw []byte) (StudyData, error) {
	decode := func(v StudyData) (StudyData, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", method, err)
		}
		return v, nil
	}

	switch method {
	case MethodFiveWhys:
		return decode(&FiveWhysData{})
	case MethodGUT:
		return decode(&GUTData{})
	case MethodSWOT:
		return decode(&SWOTData{})
	case MethodPDCA:
		return decode(&PDCAData{})
	case MethodSMART:
		return decode(&SMARTData{})
	case MethodSixW2H:
		return decode(&SixW2HData{})
	case MethodDecisionTree:
		return decode(&DecisionTreeData{})
	case MethodBrainstorm:
		return decode(&BrainstormData{})
	case MethodDiary:
		return decode(&DiaryData{})
	default:
		return nil, fmt.Errorf("unknown study method %q", method)
	}
}
