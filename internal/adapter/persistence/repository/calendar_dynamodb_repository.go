package repository

import (
	"context"
	"fmt"
	"sort"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// calendarMonthIndex is the GSI keyed by month (YYYY-MM) with date as sort key.
const calendarMonthIndex = "month-index"

type CalendarDynamoRepository struct {
	client    DynamoDBAPI
	tableName string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(client DynamoDBAPI, tables config.Tables) *CalendarDynamoRepository {
	return &CalendarDynamoRepository{client: client, tableName: tables.Events}
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (r *CalendarDynamoRepository) ListMonth(ctx context.Context, year, month int) ([]entities.CalendarEvent, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(calendarMonthIndex),
		KeyConditionExpression:    aws.String("#month = :month"),
		ExpressionAttributeNames:  map[string]string{"#month": "month"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":month": stringAttr(monthKey(year, month))},
	})

	out := []entities.CalendarEvent{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []calendarEventItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.CalendarEvent{Date: it.Date, Text: it.Text})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *CalendarDynamoRepository) Upsert(ctx context.Context, e entities.CalendarEvent) error {
	month := e.Date
	if len(month) >= 7 {
		month = month[:7]
	}
	item, err := attributevalue.MarshalMap(calendarEventItem{Date: e.Date, Month: month, Text: e.Text})
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CalendarDynamoRepository) Delete(ctx context.Context, date string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"date": stringAttr(date)},
	})
	return err
}
