package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type CatalogDynamoRepository struct {
	client        DynamoDBAPI
	vehiclesTable string
	clientsTable  string
	partsTable    string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(client DynamoDBAPI, tables config.Tables) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		client:        client,
		vehiclesTable: tables.Vehicles,
		clientsTable:  tables.Clients,
		partsTable:    tables.Parts,
	}
}

func (r *CatalogDynamoRepository) CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := r.putNew(ctx, r.vehiclesTable, toVehicleItem(v)); err != nil {
		return entities.Vehicle{}, fmt.Errorf("create vehicle %s: %w", v.ID, err)
	}
	return v, nil
}

func (r *CatalogDynamoRepository) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := r.getByID(ctx, r.vehiclesTable, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *CatalogDynamoRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var items []vehicleItem
	if err := scanAll(ctx, r.client, r.vehiclesTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(items))
	for _, it := range items {
		out = append(out, fromVehicleItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *CatalogDynamoRepository) UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	update := "SET #plate = :plate, #model = :model, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#plate":      "plate",
		"#model":      "model",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":plate":      stringAttr(v.Plate),
		":model":      stringAttr(v.Model),
		":updated_at": stringAttr(formatTime(v.UpdatedAt)),
	}
	names["#client_id"] = "client_id"
	if v.ClientID != "" {
		update += ", #client_id = :client_id"
		values[":client_id"] = stringAttr(v.ClientID)
	} else {
		update += " REMOVE #client_id"
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.vehiclesTable),
		Key:                       map[string]types.AttributeValue{"id": stringAttr(v.ID)},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *CatalogDynamoRepository) DeleteVehicle(ctx context.Context, id string) (bool, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.vehiclesTable),
		Key:          map[string]types.AttributeValue{"id": stringAttr(id)},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *CatalogDynamoRepository) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.putNew(ctx, r.clientsTable, toClientItem(c)); err != nil {
		return entities.Client{}, fmt.Errorf("create client %s: %w", c.ID, err)
	}
	return c, nil
}

func (r *CatalogDynamoRepository) GetClient(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := r.getByID(ctx, r.clientsTable, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *CatalogDynamoRepository) ListClients(ctx context.Context) ([]entities.Client, error) {
	var items []clientItem
	if err := scanAll(ctx, r.client, r.clientsTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (r *CatalogDynamoRepository) CreatePart(ctx context.Context, p entities.SparePart) (entities.SparePart, error) {
	if err := r.putNew(ctx, r.partsTable, toSparePartItem(p)); err != nil {
		return entities.SparePart{}, fmt.Errorf("create part %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *CatalogDynamoRepository) GetPart(ctx context.Context, id string) (entities.SparePart, error) {
	var it sparePartItem
	found, err := r.getByID(ctx, r.partsTable, id, &it)
	if err != nil || !found {
		return entities.SparePart{}, err
	}
	return fromSparePartItem(it), nil
}

func (r *CatalogDynamoRepository) ListParts(ctx context.Context) ([]entities.SparePart, error) {
	var items []sparePartItem
	if err := scanAll(ctx, r.client, r.partsTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.SparePart, 0, len(items))
	for _, it := range items {
		out = append(out, fromSparePartItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (r *CatalogDynamoRepository) putNew(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrConflict
	}
	return err
}

func (r *CatalogDynamoRepository) getByID(ctx context.Context, table, id string, out any) (bool, error) {
	if id == "" {
		return false, nil
	}
	return getItem(ctx, r.client, table, map[string]types.AttributeValue{"id": stringAttr(id)}, out)
}

// getItem unmarshals the item into out and reports whether it existed.
func getItem(ctx context.Context, client DynamoDBAPI, table string, key map[string]types.AttributeValue, out any) (bool, error) {
	res, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// scanAll reads a whole table into out, a pointer to a slice of items.
func scanAll(ctx context.Context, client DynamoDBAPI, table string, out any) error {
	p := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}

// queryPartition reads every item sharing a partition key value.
func queryPartition(ctx context.Context, client DynamoDBAPI, table, keyName, keyValue string, out any) error {
	p := dynamodb.NewQueryPaginator(client, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String("#pk = :pk"),
		ExpressionAttributeNames:  map[string]string{"#pk": keyName},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pk": stringAttr(keyValue)},
		ConsistentRead:            aws.Bool(true),
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}
