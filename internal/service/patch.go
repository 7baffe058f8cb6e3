package service

import "encoding/json"

// Field carries one field of a partial update as an explicit tri-state:
// absent from the request (Set false), present as JSON null (Set and Null
// true), or present with a value. UnmarshalJSON only runs for keys that
// appear in the payload, which is what makes the absent state reliable.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// TaskPatch is a partial task update. Only fields whose keys were present
// in the request are applied; for the date fields a present null clears
// the stored date, while an absent key leaves it untouched.
type TaskPatch struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Category    Field[string] `json:"category"`
	Priority    Field[string] `json:"priority"`
	DueDate     Field[string] `json:"dueDate"`
	DoDate      Field[string] `json:"doDate"`
	Completed   Field[bool]   `json:"completed"`
	IsEphemeral Field[bool]   `json:"isEphemeral"`
	Notes       Field[string] `json:"notes"`
}

// SubtaskPatch is a partial subtask update.
type SubtaskPatch struct {
	Title     Field[string] `json:"title"`
	Completed Field[bool]   `json:"completed"`
}
