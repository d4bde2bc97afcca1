package errors

import "fmt"

// NotFoundError indicates that a requested entity id has no matching record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewUserNotFound creates a NotFoundError for a missing user id.
func NewUserNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("User with ID %d not found", id)}
}

// NewTaskNotFound creates a NotFoundError for a missing task id.
func NewTaskNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Task with ID %d not found", id)}
}

// ConflictError indicates that a uniqueness or referential precondition failed.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewUsernameTaken creates a ConflictError for a duplicate username.
func NewUsernameTaken(username string) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf("Username '%s' already exists", username)}
}

// NewAssigneeNotFound creates a ConflictError for an assigned_to id with no
// matching user. The referenced user must exist at the moment of write.
func NewAssigneeNotFound(id uint64) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf("User with ID %d not found", id)}
}

// FieldViolation describes a single violated validation rule.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every field violation found in a request body.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Reason)
	}
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}
