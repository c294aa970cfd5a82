package repository

import (
	"context"
	"fmt"
	"strings"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserDynamoRepository keys accounts by lower-cased username.
type UserDynamoRepository struct {
	client    DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(client DynamoDBAPI, tables config.Tables) *UserDynamoRepository {
	return &UserDynamoRepository{client: client, tableName: tables.Users}
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var it userItem
	key := map[string]types.AttributeValue{"username": stringAttr(strings.ToLower(username))}
	found, err := getItem(ctx, r.client, r.tableName, key, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Username: it.Username, PasswordHash: it.PasswordHash, Role: it.Role}, nil
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	item, err := attributevalue.MarshalMap(userItem{
		Username:     strings.ToLower(u.Username),
		ID:           u.ID,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	})
	if err != nil {
		return entities.User{}, err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#username)"),
		ExpressionAttributeNames: map[string]string{"#username": "username"},
	})
	if isConditionalCheckFailed(err) {
		return entities.User{}, fmt.Errorf("user %s: %w", u.Username, interfaces.ErrConflict)
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
