package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestUserDynamo_LookupIsCaseInsensitive(t *testing.T) {
	f := newFakeDynamo()
	item, err := attributevalue.MarshalMap(userItem{Username: "admin", ID: "u-1", PasswordHash: "hash", Role: "admin"})
	require.NoError(t, err)
	f.seed(testTables.Users, map[string]types.AttributeValue{"username": stringAttr("admin")}, item)

	repo := NewUserDynamoRepository(f, testTables)

	got, err := repo.GetByUsername(context.Background(), "ADMIN")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)

	missing, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, missing.ID)
}

func TestCatalogDynamo_MissingRecordsAreZeroValues(t *testing.T) {
	repo := NewCatalogDynamoRepository(newFakeDynamo(), testTables)
	ctx := context.Background()

	v, err := repo.GetVehicle(ctx, "nope")
	require.NoError(t, err)
	require.Empty(t, v.ID)

	p, err := repo.GetPart(ctx, "")
	require.NoError(t, err)
	require.Empty(t, p.ID)

	vehicles, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Empty(t, vehicles)
}
