package todostore

// Todo is the sole entity managed by the service. The identifier is
// caller-supplied and immutable; Completed defaults to false at creation.
type Todo struct {
	ID        uint   `json:"id" dynamodbav:"id"`
	Name      string `json:"name" dynamodbav:"name"`
	Completed bool   `json:"completed" dynamodbav:"completed"`
}
