package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/todostore"
)

// toggleRetries bounds the optimistic read-then-conditional-write loop
// in Toggle. The condition only fails when a concurrent writer flipped
// the record between our read and write, so a handful of attempts is
// plenty.
const toggleRetries = 3

// DynamoDBStore implements todostore.TodoStore using AWS DynamoDB
type DynamoDBStore struct {
	client    DynamoDBClient
	tableName string
}

// NewDynamoDBStore creates a new DynamoDB-backed todo store
func NewDynamoDBStore(client DynamoDBClient, tableName string) todostore.TodoStore {
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoDBStore) Insert(ctx context.Context, todo todostore.Todo) error {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}

	// Add keys
	item[AttrPK] = &types.AttributeValueMemberS{Value: todoPK(todo.ID)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: todoSK()}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeTodo}

	// The condition enforces identifier uniqueness at the table level
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return todostore.NewDuplicateIDError(todo.ID)
		}
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	return nil
}

func (s *DynamoDBStore) List(ctx context.Context) ([]todostore.Todo, error) {
	todos := []todostore.Todo{}
	var lastEvaluatedKey map[string]types.AttributeValue

	// Paginate through all results
	for {
		scanInput := &dynamodb.ScanInput{
			TableName:        aws.String(s.tableName),
			FilterExpression: aws.String("entity_type = :t"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":t": &types.AttributeValueMemberS{Value: EntityTypeTodo},
			},
		}

		if lastEvaluatedKey != nil {
			scanInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Scan(ctx, scanInput)
		if err != nil {
			return nil, fmt.Errorf("failed to list todos: %w", err)
		}

		for _, item := range result.Items {
			var todo todostore.Todo
			if err := attributevalue.UnmarshalMap(item, &todo); err != nil {
				return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
			}
			todos = append(todos, todo)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return todos, nil
}

func (s *DynamoDBStore) Get(ctx context.Context, id uint) (todostore.Todo, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: todoPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
		},
	})
	if err != nil {
		return todostore.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	if result.Item == nil {
		return todostore.Todo{}, todostore.NewNotFoundError(id)
	}

	var todo todostore.Todo
	if err := attributevalue.UnmarshalMap(result.Item, &todo); err != nil {
		return todostore.Todo{}, fmt.Errorf("failed to unmarshal todo: %w", err)
	}

	return todo, nil
}

func (s *DynamoDBStore) Update(ctx context.Context, todo todostore.Todo) error {
	// "name" is a DynamoDB reserved word, hence the attribute alias
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: todoPK(todo.ID)},
			AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
		},
		UpdateExpression:    aws.String("SET #n = :name, completed = :completed"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":      &types.AttributeValueMemberS{Value: todo.Name},
			":completed": &types.AttributeValueMemberBOOL{Value: todo.Completed},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return todostore.NewNotFoundError(todo.ID)
		}
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

func (s *DynamoDBStore) Toggle(ctx context.Context, id uint) error {
	// Read the current value, then write the flipped value conditioned
	// on the read value still being current. A concurrent toggle that
	// wins the race fails our condition and we re-read, so no update is
	// ever lost.
	for attempt := 0; attempt < toggleRetries; attempt++ {
		todo, err := s.Get(ctx, id)
		if err != nil {
			return err
		}

		_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(s.tableName),
			Key: map[string]types.AttributeValue{
				AttrPK: &types.AttributeValueMemberS{Value: todoPK(id)},
				AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
			},
			UpdateExpression:    aws.String("SET completed = :new"),
			ConditionExpression: aws.String("attribute_exists(PK) AND completed = :old"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":new": &types.AttributeValueMemberBOOL{Value: !todo.Completed},
				":old": &types.AttributeValueMemberBOOL{Value: todo.Completed},
			},
		})
		if err == nil {
			return nil
		}
		if !isConditionalCheckFailed(err) {
			return fmt.Errorf("failed to toggle todo: %w", err)
		}
	}

	return fmt.Errorf("failed to toggle todo %d: retries exhausted", id)
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
