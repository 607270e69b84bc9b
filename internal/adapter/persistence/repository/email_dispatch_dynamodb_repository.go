package repository

import (
	"context"
	"time"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDispatchesTableName = "email_dispatches"
	dispatchesClientIDIndex    = "client_id-index"
)

type emailDispatchItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	SiteID            string `dynamodbav:"site_id"`
	Kind              string `dynamodbav:"kind"`
	Recipient         string `dynamodbav:"recipient"`
	ProviderMessageID string `dynamodbav:"provider_message_id,omitempty"`
	SentAt            string `dynamodbav:"sent_at"`
}

// EmailDispatchDynamoRepository persists EmailDispatch entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type EmailDispatchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDispatchLedger = (*EmailDispatchDynamoRepository)(nil)

func NewEmailDispatchDynamoRepository(ddb *dynamodb.Client) *EmailDispatchDynamoRepository {
	return &EmailDispatchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISPATCHES_TABLE", defaultDispatchesTableName),
	}
}

func (r *EmailDispatchDynamoRepository) Record(ctx context.Context, d entities.EmailDispatch) (entities.EmailDispatch, error) {
	it := toEmailDispatchItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EmailDispatch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EmailDispatch{}, err
	}
	return d, nil
}

func (r *EmailDispatchDynamoRepository) Has(ctx context.Context, clientID string, kind entities.DispatchKind) (bool, error) {
	dispatches, err := r.ListByClientID(ctx, clientID)
	if err != nil {
		return false, err
	}
	for _, d := range dispatches {
		if d.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmailDispatchDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.EmailDispatch, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dispatchesClientIDIndex),
		KeyConditionExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	dispatches := make([]entities.EmailDispatch, 0, len(out.Items))
	for _, item := range out.Items {
		var it emailDispatchItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		dispatches = append(dispatches, fromEmailDispatchItem(it))
	}
	return dispatches, nil
}

func toEmailDispatchItem(d entities.EmailDispatch) emailDispatchItem {
	return emailDispatchItem{
		ID:                d.ID,
		ClientID:          d.ClientID,
		SiteID:            d.SiteID,
		Kind:              string(d.Kind),
		Recipient:         d.Recipient,
		ProviderMessageID: d.ProviderMessageID,
		SentAt:            d.SentAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEmailDispatchItem(it emailDispatchItem) entities.EmailDispatch {
	sentAt, _ := time.Parse(time.RFC3339Nano, it.SentAt)
	return entities.EmailDispatch{
		ID:                it.ID,
		ClientID:          it.ClientID,
		SiteID:            it.SiteID,
		Kind:              entities.DispatchKind(it.Kind),
		Recipient:         it.Recipient,
		ProviderMessageID: it.ProviderMessageID,
		SentAt:            sentAt,
	}
}
